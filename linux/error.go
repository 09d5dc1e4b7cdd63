package linux

import "fmt"

// The internal parse and io helpers in this package fail by panicking
// through check; the public readers recover at their boundary and hand
// the panic back as a plain error via convertPanicToError.

func convertPanicToError(v interface{}) error {
	switch e := v.(type) {
	case nil:
		return nil
	case error:
		return e
	default:
		return fmt.Errorf("%v", e)
	}
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
