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
	"fmt"
)

// Errors translated from the status codes of the operating system's network-resource calls. Compare with errors.Is,
// some of them are returned wrapped with additional context. No call is ever retried by this package, retry and
// fallback policy is up to the caller.
var (
	ErrAccessDenied            = errors.New("access to the network resource was denied")
	ErrAlreadyAssigned         = errors.New("local device is already connected to a network resource")
	ErrBadDevice               = errors.New("local device name is not valid")
	ErrBadDeviceType           = errors.New("local device type and network resource type do not match")
	ErrBadNetName              = errors.New("network name cannot be found")
	ErrBadProfile              = errors.New("user profile is in an incorrect format")
	ErrBadProvider             = errors.New("network provider name is not valid")
	ErrBadUsername             = errors.New("user name is not valid")
	ErrBusy                    = errors.New("network provider is busy, possibly initializing")
	ErrCancelled               = errors.New("connection attempt was cancelled by the user")
	ErrCannotOpenProfile       = errors.New("unable to open the user profile to process persistent connections")
	ErrCredentialConflict      = errors.New("resource is already connected with a different set of credentials")
	ErrDeviceAlreadyRemembered = errors.New("local device name has a remembered connection to another network resource")
	ErrDeviceInUse             = errors.New("device is in use by an active process and cannot be disconnected")
	ErrExtendedError           = errors.New("network-specific error occurred")
	ErrInvalidAddress          = errors.New("attempt was made to access an invalid address")
	ErrInvalidParameter        = errors.New("a parameter is incorrect")
	ErrInvalidPassword         = errors.New("specified password is invalid")
	ErrLogonFailure            = errors.New("logon failure, unknown user name or bad password")
	ErrNoNetOrBadPath          = errors.New("no network provider accepted the given network path")
	ErrNoNetwork               = errors.New("network is unavailable")
	ErrNotConnected            = errors.New("name is not a redirected device or the system is not connected to it")
	ErrOpenFiles               = errors.New("there are open files on the connection")
	ErrUnsupportedPlatform     = errors.New("network share mounting is only supported on Windows")
)

// UnknownStatusError is returned for any status code without a dedicated error value above, preserving the raw
// code for diagnostics.
type UnknownStatusError struct {
	Code uint32
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}
