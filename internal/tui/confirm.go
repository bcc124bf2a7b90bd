package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-policy-desk/models"
)

// confirmDeleteView asks before a policy is removed. Recipients lose access
// with it; uploaded attachments stay in the blob store.
func confirmDeleteView(record models.PolicyRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delete the %s application of %q?\n",
		strings.ToLower(string(record.Status)), valueOrDash(record.FormData.Personal.FullName()))
	if record.SharedCount > 0 {
		fmt.Fprintf(&b, "It is shared with %d agent(s), who will lose access.\n", record.SharedCount)
	}
	if n := len(record.FormData.Documents) - record.FormData.Documents.Pending(); n > 0 {
		fmt.Fprintf(&b, "%d uploaded attachment(s) stay in storage.\n", n)
	}
	b.WriteString("\ny yes    n no")
	return overlayBoxStyle.Render(b.String())
}
