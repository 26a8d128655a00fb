package anonfile_test

import (
	"testing"

	"github.com/scratchfs/scratch/internal/anonfile"
)

func TestCreate(t *testing.T) {
	anonfile.VerifyAnonfile(t, anonfile.Create)
}
