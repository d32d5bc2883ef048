package sim

import "errors"

var ErrTickLimit = errors.New("tick limit reached before the simulation finished")
