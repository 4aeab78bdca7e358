/*
* GoNetUse, a minimal Go binding for mounting SMB network shares as local drives on Windows.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package netshare

import (
	"errors"
	"testing"

	"github.com/noneymous/GoNetUse/utils"
)

func TestNew(t *testing.T) {
	type args struct {
		remote   string
		username string
		password string
		mountOn  rune
	}
	tests := []struct {
		name          string
		args          args
		wantRemote    string
		wantLocalName string
	}{
		{"deviceless", args{"\\\\server\\share", "user", "pass", 0}, "\\\\server\\share", ""},
		{"mounted", args{"\\\\server.local\\share", "DOMAIN\\user", "pass", 'D'}, "\\\\server.local\\share", "D:"},
		{"lowercase-letter", args{"\\\\server\\share", "", "", 's'}, "\\\\server\\share", "s:"},
		{"trimmed-remote", args{"  \\\\server\\share  ", "", "", 0}, "\\\\server\\share", ""},
		{"empty", args{"", "", "", 0}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share := New(utils.NewTestLogger(), tt.args.remote, tt.args.username, tt.args.password, tt.args.mountOn)
			if got := share.Remote(); got != tt.wantRemote {
				t.Errorf("New() remote = '%v', want '%v'", got, tt.wantRemote)
			}
			if got := share.LocalName(); got != tt.wantLocalName {
				t.Errorf("New() local name = '%v', want '%v'", got, tt.wantLocalName)
			}
		})
	}
}

func TestShare_validMountPoint(t *testing.T) {
	tests := []struct {
		name    string
		mountOn rune
		want    bool
	}{
		{"deviceless", 0, true},
		{"uppercase", 'D', true},
		{"lowercase", 's', true},
		{"digit", '1', false},
		{"colon", ':', false},
		{"umlaut", 'ö', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(utils.NewTestLogger(), "\\\\server\\share", "", "", tt.mountOn)
			if got := s.validMountPoint(); got != tt.want {
				t.Errorf("validMountPoint() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnknownStatusError(t *testing.T) {
	errUnknown := &UnknownStatusError{Code: 4242}
	if errUnknown.Error() != "unexpected status code 4242" {
		t.Errorf("Error() = '%v'", errUnknown.Error())
	}
	var target *UnknownStatusError
	if !errors.As(error(errUnknown), &target) || target.Code != 4242 {
		t.Errorf("errors.As() did not preserve the raw status code")
	}
}
