package statuscache

import "time"

// Clock supplies the storage's notion of "now". Production code uses
// the system wall clock; tests inject a manual clock to control
// expiry deterministically.
type Clock interface {
	Now() (time.Time, error)
}

// systemClock reads the real wall clock. It cannot fail.
type systemClock struct{}

func (systemClock) Now() (time.Time, error) {
	return time.Now(), nil
}
