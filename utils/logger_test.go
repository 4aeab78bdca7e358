/*
* GoNetUse, a minimal Go binding for mounting SMB network shares as local drives on Windows.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package utils

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestTaggedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := &TestLogger{log.New(&buf, "", 0), ""}
	logger := NewTaggedLogger(base, "share1")
	logger.Infof("connected to '%s'", "\\\\server\\share")
	if got := strings.TrimSpace(buf.String()); got != "[share1] connected to '\\\\server\\share'" {
		t.Errorf("TaggedLogger output = '%s'", got)
	}
}
