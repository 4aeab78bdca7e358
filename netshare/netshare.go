/*
* GoNetUse, a minimal Go binding for mounting SMB network shares as local drives on Windows.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package netshare

import (
	"strings"

	"github.com/noneymous/GoNetUse/utils"
)

// Share holds the configuration required to connect to an SMB network share: the UNC path of the remote resource,
// credentials and an optional local drive letter to mount it on. A Share is pure configuration and immutable after
// construction. No connection state is cached here, the operating system's network-resource table owns it entirely,
// so connecting with different parameters means constructing a new Share.
type Share struct {
	logger   utils.Logger
	remote   string // UNC path identifying server and share, e.g. \\server\share
	username string // May be empty to connect with the cached/default credentials of the current user
	password string // May be empty; combined with interactive mode the OS prompts for one
	mountOn  rune   // Local drive letter to map the share on, 0 for a deviceless connection
}

// ShareInfo describes a single disk share exposed by a server, as returned by EnumerateShares.
type ShareInfo struct {
	Name   string
	Remark string
	Path   string // UNC path of the share
}

// New assembles a Share configuration. It never fails and performs no I/O, malformed values surface as typed errors
// from the subsequent operations instead. Pass 0 as mountOn for a deviceless connection (access by UNC path only).
func New(
	logger utils.Logger, // Can be any logger implementing our minimalistic interface. Wrap your logger to satisfy the interface, if necessary (like utils.TestLogger).
	remote string,
	username string,
	password string,
	mountOn rune,
) *Share {
	return &Share{
		logger:   logger,
		remote:   strings.TrimSpace(remote),
		username: username,
		password: password,
		mountOn:  mountOn,
	}
}

// Remote returns the configured UNC path.
func (s *Share) Remote() string {
	return s.remote
}

// LocalName returns the local device name the share is configured to mount on, e.g. "D:", or an empty string for
// deviceless connections.
func (s *Share) LocalName() string {
	if s.mountOn == 0 {
		return ""
	}
	return string(s.mountOn) + ":"
}

// validMountPoint checks the configured drive letter client-side. Everything beyond the letter itself (whether it is
// free, redirectable, ...) is left to the operating system's own validation.
func (s *Share) validMountPoint() bool {
	if s.mountOn == 0 {
		return true
	}
	return (s.mountOn >= 'a' && s.mountOn <= 'z') || (s.mountOn >= 'A' && s.mountOn <= 'Z')
}
