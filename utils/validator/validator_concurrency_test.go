package validatorx_test

import (
	"sync"
	"testing"

	"github.com/muhammadheryan/femnest/model"
	validatorx "github.com/muhammadheryan/femnest/utils/validator"
)

// This file sorts before validator_test.go so these calls are the first to touch
// the singleton. Run with -race.
func TestValidateVar_ConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				errs <- validatorx.ValidateVar("a@b.co", "looseemail")
				return
			}
			errs <- validatorx.ValidateStruct(&model.CredentialRequest{})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent validation error = %v", err)
		}
	}
}
