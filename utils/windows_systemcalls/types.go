/*
* GoNetUse, a minimal Go binding for mounting SMB network shares as local drives on Windows.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package windows_systemcalls

type (
	DWORD  uint32  // go, medium, github w32, outside windows: uint32
	LPWSTR *uint16 // strings have to be converted to pointer and pointer have to be converted back to strings
	LMSTR  *uint16
)

// Netresource mirrors the NETRESOURCEW structure consumed by WNetAddConnection2W. Scope, DisplayType, Usage and
// Comment are ignored by that call; Provider should stay nil so the operating system picks the network provider.
type Netresource struct {
	Scope       DWORD
	Type        DWORD
	DisplayType DWORD
	Usage       DWORD
	LocalName   LPWSTR
	RemoteName  LPWSTR
	Comment     LPWSTR
	Provider    LPWSTR
}

// SHARE_INFO_1 is the level 1 entry layout returned by NetShareEnum.
type SHARE_INFO_1 struct {
	Netname LMSTR
	Type    DWORD
	Remark  LMSTR
}
