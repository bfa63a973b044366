package bindGroupValidate

import (
	"fmt"
	"sort"

	"github.com/gogpu/naga/ir"
)

// BindGroupValidateService checks the resource bindings of a composed module
// against the constraints a pipeline layout imposes: bind group indices must
// be exactly 0..k-1 with no gaps, and binding indices must be unique within
// each group.
type BindGroupValidateService struct{}

func NewBindGroupValidateService() *BindGroupValidateService {
	return &BindGroupValidateService{}
}

type NonConsecutiveGroupsError struct {
	Groups []uint32
}

func (e *NonConsecutiveGroupsError) Error() string {
	return fmt.Sprintf("bind groups %v are non-consecutive or do not start from 0", e.Groups)
}

type DuplicateBindingError struct {
	Group   uint32
	Binding uint32
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("duplicate binding found with index %d in group %d", e.Binding, e.Group)
}

// Validate is a pure function of the composed module.
func (s *BindGroupValidateService) Validate(module *ir.Module) error {
	seen := make(map[uint32]map[uint32]bool)
	var groups []uint32

	for _, global := range module.GlobalVariables {
		if global.Binding == nil {
			continue
		}

		group := global.Binding.Group
		binding := global.Binding.Binding

		if seen[group] == nil {
			seen[group] = make(map[uint32]bool)
			groups = append(groups, group)
		}
		if seen[group][binding] {
			return &DuplicateBindingError{Group: group, Binding: binding}
		}
		seen[group][binding] = true
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
	for i, group := range groups {
		if group != uint32(i) {
			return &NonConsecutiveGroupsError{Groups: groups}
		}
	}

	return nil
}
