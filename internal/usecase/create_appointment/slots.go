package create_appointment

import "github.com/medagenda/scheduling-service/pkg/types"

// onGrid reports whether t is one of the generated slot starts
func onGrid(slots []types.TimeString, t types.TimeString) bool {
	for _, slot := range slots {
		if slot == t {
			return true
		}
	}
	return false
}
