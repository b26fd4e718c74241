package distribute_test

import (
	"reflect"
	"testing"

	"github.com/TENK-DAO/NFT/internal/domain"
	"github.com/TENK-DAO/NFT/internal/services/distribute"
)

func TestScreen(t *testing.T) {
	valid, invalid := distribute.Screen([]string{"Alice.NEAR", " bob.near ", "bad id!"})

	wantValid := []domain.AccountID{"alice.near", "bob.near"}
	if !reflect.DeepEqual(valid, wantValid) {
		t.Errorf("valid = %v, want %v", valid, wantValid)
	}
	wantInvalid := []string{"bad id!"}
	if !reflect.DeepEqual(invalid, wantInvalid) {
		t.Errorf("invalid = %v, want %v", invalid, wantInvalid)
	}
}

func TestScreen_KeepsOrderAndDuplicates(t *testing.T) {
	valid, invalid := distribute.Screen([]string{"z.near", "a.near", "z.near"})
	want := []domain.AccountID{"z.near", "a.near", "z.near"}
	if !reflect.DeepEqual(valid, want) {
		t.Errorf("valid = %v, want %v", valid, want)
	}
	if len(invalid) != 0 {
		t.Errorf("invalid = %v, want none", invalid)
	}
}

func TestScreen_AllInvalid(t *testing.T) {
	valid, invalid := distribute.Screen([]string{"!", "??", ""})
	if len(valid) != 0 {
		t.Errorf("valid = %v, want none", valid)
	}
	if len(invalid) != 3 {
		t.Errorf("invalid = %v, want 3 entries", invalid)
	}
}
