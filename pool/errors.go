// File: pool/errors.go
// Author: momentics <momentics@gmail.com>

package pool

import "github.com/momentics/hioload-pool/api"

func closedError(name string) error {
	return api.NewError(api.ErrCodeClosed, "pool is closed").
		WithContext("pool", name)
}

func exhaustedError(name string, maxSlots, want int) error {
	return api.NewError(api.ErrCodeResourceExhausted, "pool slot limit reached").
		WithContext("pool", name).
		WithContext("max_slots", maxSlots).
		WithContext("requested", want)
}

func handleError(code api.ErrorCode, msg, name string, h api.Handle) error {
	return api.NewError(code, msg).
		WithContext("pool", name).
		WithContext("handle", h.String())
}
