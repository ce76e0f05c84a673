// Package handoff decides how a "View in AR" action reaches the visitor:
// in-page activation on mobile, or a QR code that hands the page off to a
// phone on desktop. It also runs the Share action's fallback chain and the
// two-phase texture swap for the viewer.
package handoff

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"showroom/internal/catalog"
	"showroom/internal/device"
)

// DefaultFade matches the viewer's CSS fade duration.
const DefaultFade = 300 * time.Millisecond

// Outcome is the result of one Share invocation.
type Outcome int

const (
	// OutcomeNativeShare means the native share sheet took over.
	OutcomeNativeShare Outcome = iota
	// OutcomeClipboard means the URL was written to the clipboard.
	OutcomeClipboard
	// OutcomeLegacyCopy means the selection-based copy command succeeded.
	OutcomeLegacyCopy
	// OutcomeManualCopy means every tier failed and the user was told to
	// copy the URL themselves.
	OutcomeManualCopy
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNativeShare:
		return "native-share"
	case OutcomeClipboard:
		return "clipboard"
	case OutcomeLegacyCopy:
		return "legacy-copy"
	default:
		return "manual-copy"
	}
}

const copiedMessage = "Link copied to clipboard!"

func manualCopyMessage(url string) string {
	return fmt.Sprintf("Sharing isn't available here. Copy this link: %s", url)
}

// ScheduleFunc schedules fn after d and returns a cancel function reporting
// whether the call was stopped before it ran. The default uses time.AfterFunc;
// tests substitute a manual trigger.
type ScheduleFunc func(d time.Duration, fn func()) (cancel func() bool)

func afterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Negotiator owns the AR/share UI state for one viewer session: the active
// texture variant, the texture-swap transition, and the QR hand-off overlay.
// There is one logical writer (the visitor), but the swap timer fires on
// another goroutine, so a mutex guards the state.
type Negotiator struct {
	// Fade is how long the viewer's fade-out runs before the variant swap.
	Fade time.Duration
	// Logf records share-tier failures for diagnostics.
	Logf func(format string, args ...any)
	// Schedule is the transition timer hook.
	Schedule ScheduleFunc

	product *catalog.Product

	mu             sync.Mutex
	active         string
	transitioning  bool
	pendingTarget  string
	pendingCancel  func() bool
	pendingSeq     int
	handoffVisible bool
	handoffURL     string
}

// New returns a negotiator for the given product with the default variant
// active and the hand-off overlay hidden.
func New(p *catalog.Product) *Negotiator {
	n := &Negotiator{
		Fade:     DefaultFade,
		Logf:     log.Printf,
		Schedule: afterFunc,
		product:  p,
	}
	if v := p.DefaultVariant(); v != nil {
		n.active = v.Name
	}
	return n
}

// Product returns the product this negotiator drives.
func (n *Negotiator) Product() *catalog.Product { return n.product }

// RequestAR runs the AR activation strategy for one "View in AR" action.
// Mobile sessions delegate to the widget's ActivateAR; a nil widget (not yet
// mounted) is a silent no-op. Desktop sessions show the QR hand-off overlay
// with the current page URL and never touch the widget.
func (n *Negotiator) RequestAR(env Environment, widget ARWidget) {
	if device.Classify(env) == device.Mobile {
		if widget != nil {
			widget.ActivateAR()
		}
		return
	}
	n.mu.Lock()
	n.handoffVisible = true
	n.handoffURL = env.PageURL()
	n.mu.Unlock()
}

// DismissHandoff hides the QR overlay. Idempotent.
func (n *Negotiator) DismissHandoff() {
	n.mu.Lock()
	n.handoffVisible = false
	n.handoffURL = ""
	n.mu.Unlock()
}

// Handoff reports the overlay state and the URL it encodes.
func (n *Negotiator) Handoff() (url string, visible bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.handoffURL, n.handoffVisible
}

// Share runs the ordered share fallback chain: native share, clipboard
// write, legacy selection copy, then the manual-copy message. Each tier is
// attempted at most once and the first success wins. Any tier error is caught
// here, logged, and surfaced as the manual-copy message; Share never fails
// outward and every path produces exactly one user-visible outcome (native
// share is silent because the OS sheet itself is the feedback). The notify
// callback receives that invocation's message; it belongs to the call, not
// the negotiator, so concurrent shares cannot observe each other's notices.
// A nil notify discards the message.
func (n *Negotiator) Share(ctx context.Context, env Environment, title, url string, notify func(msg string)) Outcome {
	if notify == nil {
		notify = func(string) {}
	}
	out, err := n.tryShare(ctx, env, title, url, notify)
	if err != nil {
		n.Logf("share failed: %v", err)
		notify(manualCopyMessage(url))
		return OutcomeManualCopy
	}
	return out
}

func (n *Negotiator) tryShare(ctx context.Context, env Environment, title, url string, notify func(string)) (Outcome, error) {
	if env.SupportsNativeShare() {
		if err := n.shareNative(ctx, env, title, url); err != nil {
			return OutcomeManualCopy, err
		}
		return OutcomeNativeShare, nil
	}
	if env.SupportsClipboardWrite() {
		if err := env.WriteClipboard(ctx, url); err != nil {
			return OutcomeManualCopy, fmt.Errorf("clipboard write: %w", err)
		}
		notify(copiedMessage)
		return OutcomeClipboard, nil
	}
	return n.legacyCopy(env, url, notify)
}

func (n *Negotiator) shareNative(ctx context.Context, env Environment, title, url string) (err error) {
	// The native call crosses into host code; treat a panic there like a
	// rejected share so the outer net still notifies the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("native share panic: %v", r)
		}
	}()
	if err := env.ShareNative(ctx, title, url); err != nil {
		return fmt.Errorf("native share: %w", err)
	}
	return nil
}

// legacyCopy synthesizes a temporary field, selects it, and issues the copy
// command. The field is removed on every exit path. A failed copy is handled
// locally with the manual-copy message rather than bubbling as an error.
func (n *Negotiator) legacyCopy(env Environment, url string, notify func(string)) (Outcome, error) {
	if !env.SupportsLegacyCopy() {
		notify(manualCopyMessage(url))
		return OutcomeManualCopy, nil
	}
	field, err := env.NewCopyField(url)
	if err != nil {
		return OutcomeManualCopy, fmt.Errorf("copy field: %w", err)
	}
	defer field.Remove()

	field.SelectAll()
	if err := field.ExecCopy(); err != nil {
		n.Logf("legacy copy failed: %v", err)
		notify(manualCopyMessage(url))
		return OutcomeManualCopy, nil
	}
	notify(copiedMessage)
	return OutcomeLegacyCopy, nil
}

// SelectTexture starts a two-phase swap to the named variant: mark the
// presentation as transitioning, then after the fade delay swap the active
// variant and settle. Picking the already-active variant or an unknown name
// is a no-op. A second pick while a swap is pending cancels the first, so the
// latest request always wins and swaps cannot settle out of order.
func (n *Negotiator) SelectTexture(name string) {
	v := n.product.Variant(name)
	if v == nil {
		return
	}
	target := v.Name

	n.mu.Lock()
	defer n.mu.Unlock()
	if target == n.active {
		return
	}
	if n.pendingCancel != nil {
		n.pendingCancel()
		n.pendingCancel = nil
	}
	n.transitioning = true
	n.pendingTarget = target
	n.pendingSeq++
	seq := n.pendingSeq
	n.pendingCancel = n.Schedule(n.Fade, func() {
		n.settle(seq, target)
	})
}

// settle completes a swap if it is still the latest one. The sequence check
// covers a timer that fired after a newer pick cancelled it too late.
func (n *Negotiator) settle(seq int, target string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if seq != n.pendingSeq {
		return
	}
	n.active = target
	n.transitioning = false
	n.pendingTarget = ""
	n.pendingCancel = nil
}

// DisplayTexture is the variant the viewer should present: the swap target
// while a transition runs, the settled variant otherwise.
func (n *Negotiator) DisplayTexture() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.transitioning {
		return n.pendingTarget
	}
	return n.active
}

// ActiveTexture returns the settled variant name.
func (n *Negotiator) ActiveTexture() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

// Transitioning reports whether a swap's fade is still running.
func (n *Negotiator) Transitioning() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.transitioning
}
