package utils

import (
	"errors"
	"fmt"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
)

// SafeAsync runs function in a new goroutine, logging instead of crashing on panic.
func SafeAsync(function func()) {
	go func() {
		defer func() {
			if err := recoveredError(recover()); err != nil {
				log.Errorf("Background task failed with panic: %v", err)
			}
		}()
		function()
	}()
}

// SafeSync runs function in the calling goroutine and turns a panic into an error.
func SafeSync(function func() error) (err error) {
	defer func() {
		if recoverErr := recoveredError(recover()); recoverErr != nil {
			log.Errorf("Task failed with panic: %v", recoverErr)
			err = recoverErr
		}
	}()
	return function()
}

func recoveredError(e interface{}) error {
	if e == nil {
		return nil
	}
	log.Tracef("Stacktrace: %v", string(debug.Stack()))
	switch x := e.(type) {
	case string:
		return errors.New(x)
	case error:
		return x
	default:
		return fmt.Errorf("unknown panic: %v", x)
	}
}
