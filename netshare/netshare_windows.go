/*
* GoNetUse, a minimal Go binding for mounting SMB network shares as local drives on Windows.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package netshare

import (
	"fmt"
	"math"
	"syscall"
	"unsafe"

	"github.com/noneymous/GoNetUse/utils"
	"github.com/noneymous/GoNetUse/utils/windows_systemcalls"
	"golang.org/x/sys/windows"
)

// windows constants
const (
	StypeDisktree      = 0x00
	ResourcetypeDisk   = 1
	MaxPreferredLength = 0xFFFFFFFF

	ConnectUpdateProfile = 0x00000001
	ConnectTemporary     = 0x00000004
	ConnectInteractive   = 0x00000008
)

// Connect adds the share to the operating system's network-resource table, mapping it to the configured drive letter
// if one is set. The call blocks for the whole negotiation, including any interactive credential prompt.
//
// - persist requests that the mapping is remembered and restored on subsequent logons. The OS only remembers
//   successful connections that redirect local devices, so the flag is a no-op for deviceless connections.
// - interactive permits the OS to prompt the user for credentials instead of failing with ErrInvalidPassword or
//   ErrLogonFailure. A dismissed prompt surfaces as ErrCancelled.
//
// Connecting multiple times works fine in deviceless mode but fails with ErrAlreadyAssigned on a mapped drive letter.
func (s *Share) Connect(persist bool, interactive bool) error {

	// Reject illegal drive letters before bothering the operating system
	if !s.validMountPoint() {
		return fmt.Errorf("%w: invalid drive letter '%c'", ErrInvalidParameter, s.mountOn)
	}

	// Prepare memory
	var localPtr *uint16
	var userPtr *uint16
	var passwordPtr *uint16

	remotePtr, errRemote := syscall.UTF16PtrFromString(s.remote)
	if errRemote != nil {
		return fmt.Errorf("%w: could not convert remote name: %s", ErrInvalidParameter, errRemote)
	}

	if localName := s.LocalName(); localName != "" {
		var errLocal error
		localPtr, errLocal = syscall.UTF16PtrFromString(localName)
		if errLocal != nil {
			return fmt.Errorf("%w: could not convert local name: %s", ErrInvalidParameter, errLocal)
		}
	}

	// If a user is provided, use the specified credentials otherwise use the default credentials of the current
	// windows account instead (leaves userPtr and passwordPtr as nil)
	if s.username != "" {
		var errCred error
		userPtr, errCred = syscall.UTF16PtrFromString(s.username)
		if errCred != nil {
			return fmt.Errorf("%w: could not convert user name: %s", ErrInvalidParameter, errCred)
		}
		passwordPtr, errCred = syscall.UTF16PtrFromString(s.password)
		if errCred != nil {
			return fmt.Errorf("%w: could not convert password: %s", ErrInvalidParameter, errCred)
		}
	}

	// Calculate connection flags
	flags := uint32(ConnectTemporary)
	if persist && s.mountOn != 0 {
		flags = ConnectUpdateProfile
	}
	if interactive {
		flags |= ConnectInteractive
	}

	// Create "Netresource" with share information
	var netResource windows_systemcalls.Netresource
	netResource.Type = ResourcetypeDisk
	netResource.LocalName = localPtr
	netResource.RemoteName = remotePtr

	// Log attempt
	s.logger.Debugf("Connecting '%s' (flags %#x).", s.remote, flags)

	// Connect share
	errConnect := windows_systemcalls.WNetAddConnection2(&netResource, passwordPtr, userPtr, flags)
	if errConnect != nil {
		errMapped := connectError(errConnect)
		s.logger.Debugf("Connecting '%s' failed with status code %d: %s", s.remote, statusCode(errConnect), errMapped)
		return errMapped
	}

	// Return nil as everything went fine
	s.logger.Debugf("Connected '%s' successfully.", s.remote)
	return nil
}

// Disconnect removes the share's mapping from the network-resource table, by local device name if one is configured,
// otherwise by remote name. With force set the teardown happens even if there are still open files or jobs on the
// connection, otherwise such a conflict is returned as ErrOpenFiles or ErrDeviceInUse.
func (s *Share) Disconnect(force bool) error {
	return s.cancel(0, force)
}

// Forget disconnects like Disconnect and additionally updates the user profile, so a persistent mapping is not
// restored on the next logon. Disconnecting by remote name has no effect on persistent connections, hence the
// profile update is only requested when a drive letter is configured.
func (s *Share) Forget(force bool) error {
	flags := uint32(0)
	if s.mountOn != 0 {
		flags = ConnectUpdateProfile
	}
	return s.cancel(flags, force)
}

func (s *Share) cancel(flags uint32, force bool) error {

	// Reject illegal drive letters before bothering the operating system
	if !s.validMountPoint() {
		return fmt.Errorf("%w: invalid drive letter '%c'", ErrInvalidParameter, s.mountOn)
	}

	// Disconnect by local device name if one is configured, otherwise by remote name
	name := s.LocalName()
	if name == "" {
		name = s.remote
	}

	namePtr, errName := syscall.UTF16PtrFromString(name)
	if errName != nil {
		return fmt.Errorf("%w: could not convert resource name: %s", ErrInvalidParameter, errName)
	}

	// Log attempt
	s.logger.Debugf("Disconnecting '%s' (flags %#x, force %t).", name, flags, force)

	// Disconnect share
	errCancel := windows_systemcalls.WNetCancelConnection2(namePtr, flags, force)
	if errCancel != nil {
		errMapped := disconnectError(errCancel)
		s.logger.Debugf("Disconnecting '%s' failed with status code %d: %s", name, statusCode(errCancel), errMapped)
		return errMapped
	}

	// Return nil as everything went fine
	s.logger.Debugf("Disconnected '%s' successfully.", name)
	return nil
}

// CurrentRemote queries the remote path the configured drive letter is currently mapped to. It returns
// ErrNotConnected if no mapping exists and ErrInvalidParameter for deviceless shares, where there is no local
// device name to query by.
func (s *Share) CurrentRemote() (string, error) {
	if s.mountOn == 0 {
		return "", fmt.Errorf("%w: share is configured without a local mount point", ErrInvalidParameter)
	}
	if !s.validMountPoint() {
		return "", fmt.Errorf("%w: invalid drive letter '%c'", ErrInvalidParameter, s.mountOn)
	}

	localPtr, errLocal := syscall.UTF16PtrFromString(s.LocalName())
	if errLocal != nil {
		return "", fmt.Errorf("%w: could not convert local name: %s", ErrInvalidParameter, errLocal)
	}

	// Query mapping
	remote, errQuery := getConnection(func(buf []uint16, length *uint32) error {
		return windows_systemcalls.WNetGetConnection(localPtr, &buf[0], length)
	})
	if errQuery != nil {
		if code, ok := errQuery.(syscall.Errno); ok && code == windows.ERROR_CONNECTION_UNAVAIL {
			// Remembered but currently unavailable mappings count as not connected
			return "", ErrNotConnected
		}
		return "", disconnectError(errQuery)
	}

	// Return current remote name of the local device
	return remote, nil
}

// getConnection invokes query with a growing buffer. If the call reports the buffer too small, it writes the
// required length back and is retried once with a buffer of that size.
func getConnection(query func(buf []uint16, length *uint32) error) (string, error) {

	// Prepare memory
	buf := make([]uint16, 1024)
	length := uint32(len(buf))

	errQuery := query(buf, &length)
	if code, ok := errQuery.(syscall.Errno); ok && code == windows.ERROR_MORE_DATA && int(length) > len(buf) {
		buf = make([]uint16, length)
		errQuery = query(buf, &length)
	}
	if errQuery != nil {
		return "", errQuery
	}

	return syscall.UTF16ToString(buf), nil
}

// EnumerateShares lists the disk shares exposed by the given server. Non-disk shares (printer queues, IPC pipes,
// communication devices) are skipped.
func EnumerateShares(logger utils.Logger, server string) ([]ShareInfo, error) {

	// Prepare memory
	var buf *byte
	var entriesRead, totalEntries uint32
	var shares []ShareInfo
	serverPtr, errServer := syscall.UTF16PtrFromString(server)
	if errServer != nil {
		return nil, fmt.Errorf("%w: could not convert server name: %s", ErrInvalidParameter, errServer)
	}

	// Get all shares via WinApi call
	errEnum := windows_systemcalls.NetShareEnum(serverPtr, 1, &buf, MaxPreferredLength,
		&entriesRead, &totalEntries, nil)

	defer func() {
		// We have to free the buffer only on success or fail with ERROR_MORE_DATA (If this error happens we cannot
		// extend the memory, since we already used MaxPreferredLength)
		if errEnum == nil || errEnum == syscall.ERROR_MORE_DATA {
			errFree := syscall.NetApiBufferFree(buf)
			if errFree != nil {
				logger.Warningf("Freeing allocated net buffer failed: %s", errFree)
			}
		}
	}()

	// Return when an error occurs
	if errEnum != nil {
		return nil, connectError(errEnum)
	}

	// Max length of array is the max value of the default int of the system, so we go for 32 Bit to be able to run on
	// 32-Bit architecture windows
	if entriesRead > math.MaxInt32 {
		return nil, fmt.Errorf("too many shares on server, found: %d, max: %d", entriesRead, math.MaxInt32)
	}

	// Do not proceed if we did not find any entries ("buf" will be nil and there will be a panic if we try to
	// convert it)
	if entriesRead <= 0 {
		return nil, nil
	}

	// Convert the returned pointer to an unsafe.Pointer, cast it to an array of SHARE_INFO_1 and cut the slice of
	// the right length (as seen in listGroupsForUsernameAndDomain in os/user/lookup_windows.go)
	entries := (*[math.MaxInt32]windows_systemcalls.SHARE_INFO_1)(unsafe.Pointer(buf))[:entriesRead:entriesRead]
	for _, entry := range entries {

		// Prepare memory
		shareName := syscall.UTF16ToString((*[1024]uint16)(unsafe.Pointer(entry.Netname))[:])

		// We are only interested in disk drives
		if entry.Type&0xFFFF != StypeDisktree {
			logger.Debugf("Skipping non-disk share '%s' (type %#x).", shareName, entry.Type)
			continue
		}

		var remark string
		if entry.Remark != nil {
			remark = syscall.UTF16ToString((*[1024]uint16)(unsafe.Pointer(entry.Remark))[:])
		}

		// Create UNC path, the filepath.join method does not work here properly
		shares = append(shares, ShareInfo{
			Name:   shareName,
			Remark: remark,
			Path:   fmt.Sprintf("\\\\%s\\%s", server, shareName),
		})
	}

	// Return shares
	return shares, nil
}

// FreeDriveLetters returns the drive letters currently unassigned on this host, for callers picking a mount point.
func FreeDriveLetters() ([]rune, error) {

	// Query bitmask of assigned drive letters, bit 0 representing "A:"
	bitmask, errDrives := windows.GetLogicalDrives()
	if errDrives != nil {
		return nil, errDrives
	}

	var free []rune
	for i := 0; i < 26; i++ {
		if bitmask&(1<<uint(i)) == 0 {
			free = append(free, rune('A'+i))
		}
	}

	// Return unassigned letters
	return free, nil
}

// connectError translates the status code of a failed connection attempt into one of the typed error values.
func connectError(neterr error) error {
	code, ok := neterr.(syscall.Errno)
	if !ok {
		return neterr
	}
	switch code {
	case windows.ERROR_ACCESS_DENIED:
		return ErrAccessDenied
	case windows.ERROR_ALREADY_ASSIGNED:
		return ErrAlreadyAssigned
	case windows.ERROR_BAD_DEVICE:
		return ErrBadDevice
	case windows.ERROR_BAD_DEV_TYPE:
		return ErrBadDeviceType
	case windows.ERROR_BAD_NET_NAME:
		return ErrBadNetName
	case windows.ERROR_BAD_PROFILE:
		return ErrBadProfile
	case windows.ERROR_BAD_PROVIDER:
		return ErrBadProvider
	case windows.ERROR_BAD_USERNAME:
		return ErrBadUsername
	case windows.ERROR_BUSY:
		return ErrBusy
	case windows.ERROR_CANCELLED:
		return ErrCancelled
	case windows.ERROR_CANNOT_OPEN_PROFILE:
		return ErrCannotOpenProfile
	case windows.ERROR_DEVICE_ALREADY_REMEMBERED:
		return ErrDeviceAlreadyRemembered
	case windows.ERROR_EXTENDED_ERROR:
		return ErrExtendedError
	case windows.ERROR_INVALID_ADDRESS:
		return ErrInvalidAddress
	case windows.ERROR_INVALID_PARAMETER:
		return ErrInvalidParameter
	case windows.ERROR_INVALID_PASSWORD:
		return ErrInvalidPassword
	case windows.ERROR_LOGON_FAILURE:
		return ErrLogonFailure
	case windows.ERROR_NO_NET_OR_BAD_PATH:
		return ErrNoNetOrBadPath
	case windows.ERROR_NO_NETWORK:
		return ErrNoNetwork
	case windows.ERROR_SESSION_CREDENTIAL_CONFLICT:
		return ErrCredentialConflict
	default:
		return &UnknownStatusError{Code: uint32(code)}
	}
}

// disconnectError translates the status code of a failed disconnect attempt into one of the typed error values.
func disconnectError(neterr error) error {
	code, ok := neterr.(syscall.Errno)
	if !ok {
		return neterr
	}
	switch code {
	case windows.ERROR_BAD_PROFILE:
		return ErrBadProfile
	case windows.ERROR_CANNOT_OPEN_PROFILE:
		return ErrCannotOpenProfile
	case windows.ERROR_DEVICE_IN_USE:
		return ErrDeviceInUse
	case windows.ERROR_EXTENDED_ERROR:
		return ErrExtendedError
	case windows.ERROR_NOT_CONNECTED:
		return ErrNotConnected
	case windows.ERROR_OPEN_FILES:
		return ErrOpenFiles
	default:
		return &UnknownStatusError{Code: uint32(code)}
	}
}

// statusCode extracts the raw status code for diagnostic log messages.
func statusCode(neterr error) uint32 {
	if code, ok := neterr.(syscall.Errno); ok {
		return uint32(code)
	}
	return 0
}
