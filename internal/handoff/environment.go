package handoff

import (
	"context"

	"showroom/internal/device"
)

// Environment is the host-environment capability surface the negotiator works
// against. It extends the device probe's view with the current page URL and
// the three sharing mechanisms. Capability probes and actions are separate so
// an absent capability is a normal branch, not an error.
type Environment interface {
	device.Environment

	// PageURL is the full address of the page the visitor is on. It is the
	// payload for both the QR hand-off and every share tier.
	PageURL() string

	// SupportsNativeShare reports whether the environment has a native
	// share sheet. ShareNative presents it with the given title and URL;
	// an error means the call was rejected (e.g. the user cancelled).
	SupportsNativeShare() bool
	ShareNative(ctx context.Context, title, url string) error

	// SupportsClipboardWrite reports whether a clipboard-write capability
	// exists. WriteClipboard places text on it.
	SupportsClipboardWrite() bool
	WriteClipboard(ctx context.Context, text string) error

	// SupportsLegacyCopy reports whether the legacy selection-based copy
	// command is available. NewCopyField synthesizes a temporary
	// off-screen field holding text; the caller must Remove it.
	SupportsLegacyCopy() bool
	NewCopyField(text string) (CopyField, error)
}

// CopyField is a temporary text field used by the legacy copy tier.
type CopyField interface {
	// SelectAll focuses the field and selects its full contents.
	SelectAll()
	// ExecCopy issues the legacy copy command over the selection.
	ExecCopy() error
	// Remove detaches the field from the document. Always called, on both
	// the success and failure paths.
	Remove()
}

// ARWidget is the narrow handle onto the external 3D viewer. The negotiator
// only ever calls ActivateAR and never inspects how AR is rendered.
type ARWidget interface {
	ActivateAR()
}
