package ordering

import (
	"sort"

	"github.com/dashua-baba/layoutsolve/pkg/room"
)

// ByConstrainedness returns a copy of reqs sorted by
// RoomRequirement.Constrainedness(), descending. The sort is stable, so
// equally-constrained rooms retain their input order.
func ByConstrainedness(reqs []room.RoomRequirement) []room.RoomRequirement {
	ordered := make([]room.RoomRequirement, len(reqs))
	copy(ordered, reqs)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Constrainedness() > ordered[j].Constrainedness()
	})

	return ordered
}
