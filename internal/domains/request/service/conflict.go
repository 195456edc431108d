package service

import (
	"distribution-oos-backend/internal/domains/request/model"
)

// ResolveConflicts throttle volume khi có request khác còn live cạnh
// tranh cùng product ở priority cao hơn: allowed bị clamp về
// fromQuantity (không cho tăng chút nào), không chia tỷ lệ.
// Snapshot `all` phải được chụp atomically với run đang phân tích.
func ResolveConflicts(current *model.ChangeRequest, all []model.ChangeRequest) int {
	change := current.FirstChange()
	if change == nil {
		return 0
	}

	thisRank := current.Priority.Rank()
	maxRank := 0
	for _, other := range all {
		if other.ID == current.ID || !other.Status.IsLive() {
			continue
		}
		otherChange := other.FirstChange()
		if otherChange == nil || otherChange.ProductID != change.ProductID {
			continue
		}
		if r := other.Priority.Rank(); r > maxRank {
			maxRank = r
		}
	}

	if maxRank > 0 && thisRank < maxRank {
		return change.FromQuantity
	}
	return change.ToQuantity
}
