/*
* GoNetUse, a minimal Go binding for mounting SMB network shares as local drives on Windows.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

//go:build !windows

package netshare

import "github.com/noneymous/GoNetUse/utils"

// Network drive mapping relies on the WNet API family, which only exists on Windows. These stubs keep the package
// compilable on other platforms.

func (s *Share) Connect(persist bool, interactive bool) error {
	return ErrUnsupportedPlatform
}

func (s *Share) Disconnect(force bool) error {
	return ErrUnsupportedPlatform
}

func (s *Share) Forget(force bool) error {
	return ErrUnsupportedPlatform
}

func (s *Share) CurrentRemote() (string, error) {
	return "", ErrUnsupportedPlatform
}

func EnumerateShares(logger utils.Logger, server string) ([]ShareInfo, error) {
	return nil, ErrUnsupportedPlatform
}

func FreeDriveLetters() ([]rune, error) {
	return nil, ErrUnsupportedPlatform
}
