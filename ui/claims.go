package ui

import (
	"errors"

	"github.com/OpticalFlyer/strata/region"
)

var (
	// ErrRegionAlreadyClaimed is returned when a claimed region overlaps an
	// existing claim of the same category in the same layer.
	ErrRegionAlreadyClaimed = errors.New("region already claimed")
	// ErrUnregisteredPhase is returned when a render claim names a phase
	// that is not in the layer's registry.
	ErrUnregisteredPhase = errors.New("render phase not registered")
)

// ClaimSet is handed to Behavior.Attach. Claim* methods register a
// region-scoped subscription and fail when the region overlaps an earlier
// claim of the same kind in the layer. Make* methods register a global
// subscription that is not tied to a region.
type ClaimSet interface {
	ClaimRenderSpace(r region.Region, trigger Trigger, opacity Opacity, phase PhaseID) error

	ClaimKeyDownSpace(r region.Region) error
	ClaimKeyUpSpace(r region.Region) error
	// ClaimKeyListenSpace claims r for both key downs and key ups.
	ClaimKeyListenSpace(r region.Region) error
	MakeKeyDownListener(priority int)
	MakeKeyUpListener(priority int)
	MakeKeyListener(priority int)

	ClaimMouseClickSpace(r region.Region) error
	MakeMouseClickListener()
	ClaimMouseScrollSpace(r region.Region) error
	MakeMouseScrollListener(priority int)
	// ClaimMouseMoveSpace delivers moves that start or end inside r.
	ClaimMouseMoveSpace(r region.Region) error
	// ClaimMouseInOutSpace delivers moves that enter or leave r.
	ClaimMouseInOutSpace(r region.Region) error
	MakeMouseMoveListener()

	ClaimCopySpace(r region.Region) error
	ClaimPasteSpace(r region.Region) error
	ClaimCutSpace(r region.Region) error
	// ClaimClipboardSpace claims r for copy, paste and cut.
	ClaimClipboardSpace(r region.Region) error
	MakeCopyListener(priority int)
	MakePasteListener(priority int)
	MakeCutListener(priority int)
	MakeClipboardListener(priority int)

	MakeUpdateListener()
}

// layerClaims binds a ClaimSet to one behavior of a layer.
type layerClaims struct {
	layer *SimpleLayer
	id    behaviorID
}

func (c layerClaims) ClaimRenderSpace(r region.Region, trigger Trigger, opacity Opacity, phase PhaseID) error {
	return c.layer.render.claim(&c.layer.arena, c.id, renderClaim{region: r, trigger: trigger, opacity: opacity, phase: phase})
}

func (c layerClaims) ClaimKeyDownSpace(r region.Region) error {
	return c.layer.keys.down.claim(&c.layer.arena, c.id, r, "key down")
}

func (c layerClaims) ClaimKeyUpSpace(r region.Region) error {
	return c.layer.keys.up.claim(&c.layer.arena, c.id, r, "key up")
}

func (c layerClaims) ClaimKeyListenSpace(r region.Region) error {
	a := &c.layer.arena
	if err := c.layer.keys.down.check(a, r, "key down"); err != nil {
		return err
	}
	if err := c.layer.keys.up.check(a, r, "key up"); err != nil {
		return err
	}
	c.layer.keys.down.regions.add(c.id, r)
	c.layer.keys.up.regions.add(c.id, r)
	return nil
}

func (c layerClaims) MakeKeyDownListener(priority int) { c.layer.keys.down.global.insert(c.id, priority) }
func (c layerClaims) MakeKeyUpListener(priority int)   { c.layer.keys.up.global.insert(c.id, priority) }

func (c layerClaims) MakeKeyListener(priority int) {
	c.MakeKeyDownListener(priority)
	c.MakeKeyUpListener(priority)
}

func (c layerClaims) ClaimMouseClickSpace(r region.Region) error {
	return c.layer.mouse.claimClick(&c.layer.arena, c.id, r)
}

func (c layerClaims) MakeMouseClickListener() {
	c.layer.mouse.clickGlobal.add(c.id, struct{}{})
}

func (c layerClaims) ClaimMouseScrollSpace(r region.Region) error {
	return c.layer.mouse.claimScroll(&c.layer.arena, c.id, r)
}

func (c layerClaims) MakeMouseScrollListener(priority int) {
	c.layer.mouse.scroll.global.insert(c.id, priority)
}

func (c layerClaims) ClaimMouseMoveSpace(r region.Region) error {
	return c.layer.mouse.claimMove(&c.layer.arena, c.id, r)
}

func (c layerClaims) ClaimMouseInOutSpace(r region.Region) error {
	return c.layer.mouse.claimInOut(&c.layer.arena, c.id, r)
}

func (c layerClaims) MakeMouseMoveListener() {
	c.layer.mouse.moveGlobal.add(c.id, struct{}{})
}

func (c layerClaims) ClaimCopySpace(r region.Region) error {
	return c.layer.clipboard.copy.claim(&c.layer.arena, c.id, r, "copy")
}

func (c layerClaims) ClaimPasteSpace(r region.Region) error {
	return c.layer.clipboard.paste.claim(&c.layer.arena, c.id, r, "paste")
}

func (c layerClaims) ClaimCutSpace(r region.Region) error {
	return c.layer.clipboard.cut.claim(&c.layer.arena, c.id, r, "cut")
}

func (c layerClaims) ClaimClipboardSpace(r region.Region) error {
	a := &c.layer.arena
	cb := &c.layer.clipboard
	for _, check := range []struct {
		list *spatialListeners
		kind string
	}{{&cb.copy, "copy"}, {&cb.paste, "paste"}, {&cb.cut, "cut"}} {
		if err := check.list.check(a, r, check.kind); err != nil {
			return err
		}
	}
	cb.copy.regions.add(c.id, r)
	cb.paste.regions.add(c.id, r)
	cb.cut.regions.add(c.id, r)
	return nil
}

func (c layerClaims) MakeCopyListener(priority int)  { c.layer.clipboard.copy.global.insert(c.id, priority) }
func (c layerClaims) MakePasteListener(priority int) { c.layer.clipboard.paste.global.insert(c.id, priority) }
func (c layerClaims) MakeCutListener(priority int)   { c.layer.clipboard.cut.global.insert(c.id, priority) }

func (c layerClaims) MakeClipboardListener(priority int) {
	c.MakeCopyListener(priority)
	c.MakePasteListener(priority)
	c.MakeCutListener(priority)
}

func (c layerClaims) MakeUpdateListener() {
	c.layer.updates.listeners.add(c.id, struct{}{})
}
