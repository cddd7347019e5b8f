package cleaning

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Controller applies operator corrections to one session and promotes them
// into dictionary rules. It exclusively owns the session's row model during a
// mutation; the feature layer serializes calls per session.
type Controller struct {
	session *Session
	store   AliasStore
	logger  *zap.Logger
}

// NewController wires a controller to a session and the alias store.
func NewController(session *Session, store AliasStore, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{session: session, store: store, logger: logger}
}

// Session returns the controlled session.
func (c *Controller) Session() *Session {
	return c.session
}

// EditRow replaces a row's extracted value with an operator-supplied one.
// The row becomes a manual override and its status is reclassified against
// the current dictionary. An existing selection source is kept; only a later
// span selection replaces it.
func (c *Controller) EditRow(mode Mode, rowID, value string) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrModeUnsupported, mode)
	}
	if _, ok := c.session.Assignments[mode]; !ok {
		return fmt.Errorf("%w: %s", ErrNoColumnAssigned, mode)
	}
	row, err := c.session.Row(rowID)
	if err != nil {
		return err
	}

	res := row.Result(mode)
	res.ExtractedValue = strings.TrimSpace(value)
	res.ManualOverride = true
	res.Status = c.session.statusFor(mode, res.ExtractedValue)
	return nil
}

// SelectSpan applies a free-text span selection: the highlighted substring of
// the row's raw text becomes both the extracted value and the selection
// source. Size and name modes only.
func (c *Controller) SelectSpan(mode Mode, rowID, text string) error {
	if mode != ModeSize && mode != ModeName {
		return fmt.Errorf("%w: span selection in %q", ErrModeUnsupported, mode)
	}
	if _, ok := c.session.Assignments[mode]; !ok {
		return fmt.Errorf("%w: %s", ErrNoColumnAssigned, mode)
	}
	row, err := c.session.Row(rowID)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("empty selection")
	}

	res := row.Result(mode)
	res.ExtractedValue = text
	res.SelectionSource = text
	res.ManualOverride = true
	if c.session.statusFor(mode, text) == StatusMatched {
		res.Status = StatusMatched
	} else {
		res.Status = StatusNew
	}
	return nil
}

// Promote turns a row's correction into a dictionary rule and propagates the
// new rule across the whole row collection.
//
// Persistence to the alias store is best effort: a failed remote write leaves
// the in-memory dictionary and row statuses updated, records a warning on the
// session, and stays retryable by invoking Promote again.
func (c *Controller) Promote(ctx context.Context, mode Mode, rowID string) error {
	if mode != ModeSize && mode != ModeName {
		// Price status is deterministic per row; there is nothing to learn.
		return fmt.Errorf("%w: rule promotion in %q", ErrModeUnsupported, mode)
	}
	row, err := c.session.Row(rowID)
	if err != nil {
		return err
	}
	if _, ok := c.session.Assignments[mode]; !ok {
		return fmt.Errorf("%w: %s", ErrNoColumnAssigned, mode)
	}

	res := row.Result(mode)
	if res.Status != StatusNew && !(res.Status == StatusMatched && res.ManualOverride) {
		return ErrNotPromotable
	}

	if mode == ModeName {
		return c.promoteName(ctx, row, res)
	}
	return c.promoteSize(ctx, row, res)
}

// promoteName persists the raw-text → product-name alias and marks every row
// with identical raw text (exact, case-sensitive) as matched.
func (c *Controller) promoteName(ctx context.Context, row *ParsedRow, res *ModeResult) error {
	name := strings.TrimSpace(res.ExtractedValue)
	if name == "" {
		// An empty label must never become a rule.
		return nil
	}
	target := res.TargetText

	c.session.Dict.AddProductAlias(target, name)

	if err := c.store.CreateProductAlias(ctx, target, name); err != nil {
		c.warnStoreWrite("product alias", target, name, err)
	}

	for _, other := range c.session.Rows {
		r := other.Result(ModeName)
		if r.TargetText == target {
			r.ExtractedValue = name
			r.Status = StatusMatched
		}
	}
	return nil
}

// promoteSize learns a size rule from the row's value and selection source,
// then rescans the full row collection: equivalent values are confirmed and
// unresolved rows are re-tested against the new matcher and the label's
// dimension pattern. A single rule is expected to resolve many distinct but
// equivalent raw strings in one pass.
func (c *Controller) promoteSize(ctx context.Context, row *ParsedRow, res *ModeResult) error {
	label := strings.TrimSpace(res.ExtractedValue)
	if label == "" {
		return nil
	}

	c.session.Dict.AddSizeRule(label, res.SelectionSource)

	// The store create is idempotent and runs on every promote, not only when
	// the label is new locally: a retry after a failed write still persists it.
	if err := c.store.CreateSize(ctx, label); err != nil {
		c.warnStoreWrite("size", label, label, err)
	}
	source := res.SelectionSource
	if source == "" {
		source = res.TargetText
	}
	if source != "" && !strings.EqualFold(source, label) {
		if err := c.store.CreateSizeAlias(ctx, source, label); err != nil {
			c.warnStoreWrite("size alias", source, label, err)
		}
	}

	res.ExtractedValue = label
	res.Status = StatusMatched

	matcher := strings.TrimSpace(res.SelectionSource)
	pattern := LabelDimensionPattern(label)

	for _, other := range c.session.Rows {
		if other == row {
			continue
		}
		r := other.Result(ModeSize)
		switch {
		case r.ExtractedValue == label:
			r.Status = StatusMatched
		case r.Status == StatusNew && strings.EqualFold(r.ExtractedValue, label):
			r.ExtractedValue = label
			r.Status = StatusMatched
		case r.ManualOverride:
			// Never reclassify an operator's standing decision.
		case r.Status == StatusNew || r.Status == StatusUnknown || r.ExtractedValue == "":
			if matcher != "" && strings.Contains(strings.ToLower(r.TargetText), strings.ToLower(matcher)) {
				r.ExtractedValue = label
				r.Status = StatusMatched
			} else if pattern != nil && pattern.MatchString(r.TargetText) {
				r.ExtractedValue = label
				r.Status = StatusMatched
			}
		}
	}
	return nil
}

// warnStoreWrite logs and records a failed best-effort store write.
func (c *Controller) warnStoreWrite(kind, text, mapped string, err error) {
	c.logger.Warn("Alias store write failed",
		zap.String("kind", kind),
		zap.String("text", text),
		zap.String("mapped", mapped),
		zap.Error(err),
	)
	c.session.AddWarning("saving %s %q → %q failed: %v; the rule is active for this session and can be promoted again", kind, text, mapped, err)
}
