package stdparams

import (
	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

// PositiveInt returns a setter for an int64 parameter which will only
// accept values greater than zero
func PositiveInt(v *int64) psetter.Int[int64] {
	return psetter.Int[int64]{
		Value: v,
		Checks: []check.Int64{
			check.ValGT[int64](0),
		},
	}
}

// PositiveIntUpTo returns a setter for an int64 parameter which will only
// accept values greater than zero and no greater than the limit
func PositiveIntUpTo(v *int64, limit int64) psetter.Int[int64] {
	s := PositiveInt(v)
	s.Checks = append(s.Checks, check.ValLE(limit))

	return s
}

// AddPositiveInt adds a parameter which takes a positive integer value. It
// returns the parameter so that callers can refer to it in final checks or
// test whether it has been set.
func AddPositiveInt(
	ps *param.PSet,
	name string,
	v *int64,
	desc string,
	opt ...param.OptFunc,
) *param.ByName {
	return ps.Add(name, PositiveInt(v), desc, opt...)
}
