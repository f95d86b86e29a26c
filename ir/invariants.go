package ir

import "github.com/tinywasm/hwpconv/warn"

// Validate checks the document's structural invariants and returns the
// first violation found, or nil. Writers call this before emitting
// bytes: a writer fails hard only on broken references or invariant
// violations in the caller-supplied document.
func (d *Document) Validate() error {
	if err := d.validateStyleReferences(); err != nil {
		return err
	}
	for si := range d.Sections {
		sec := &d.Sections[si]
		if sec.PageBorderFill != nil {
			if _, err := d.Styles.ResolveBorderFill(*sec.PageBorderFill); err != nil {
				return err
			}
		}
		for pi := range sec.Paragraphs {
			if err := d.validateParagraph(&sec.Paragraphs[pi]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Document) validateStyleReferences() error {
	for _, cs := range d.Styles.CharShapes {
		for _, slot := range cs.Fonts {
			if _, err := d.Styles.ResolveFont(slot.Font); err != nil {
				return err
			}
		}
		if cs.BorderFill != nil {
			if _, err := d.Styles.ResolveBorderFill(*cs.BorderFill); err != nil {
				return err
			}
		}
	}
	for _, ps := range d.Styles.ParaShapes {
		if ps.Border != nil {
			if _, err := d.Styles.ResolveBorderFill(ps.Border.BorderFill); err != nil {
				return err
			}
		}
		if ps.TabDef != nil {
			if int(*ps.TabDef) < 0 || int(*ps.TabDef) >= len(d.Styles.TabDefs) {
				return warn.UnresolvedReference("TabDef", int(*ps.TabDef))
			}
		}
	}
	for _, st := range d.Styles.Styles {
		if _, err := d.Styles.ResolveParaShape(st.ParaShape); err != nil {
			return err
		}
		if _, err := d.Styles.ResolveCharShape(st.CharShape); err != nil {
			return err
		}
	}
	for _, f := range d.Styles.Fonts {
		if f.Embedded {
			if _, ok := d.BinaryData[f.EmbeddedRef]; !ok {
				return warn.UnresolvedReference("BinaryData", int(f.EmbeddedRef))
			}
		}
	}
	return nil
}

func (d *Document) validateParagraph(p *Paragraph) error {
	if _, err := d.Styles.ResolveParaShape(p.ParaShape); err != nil {
		return err
	}
	if int(p.Style) < 0 || int(p.Style) >= len(d.Styles.Styles) {
		return warn.UnresolvedReference("Style", int(p.Style))
	}
	for _, r := range p.Runs {
		if r.CharShape != nil {
			if _, err := d.Styles.ResolveCharShape(*r.CharShape); err != nil {
				return err
			}
		}
		for _, c := range r.Content {
			if c.Kind == ContentControl && c.Control != nil {
				if err := d.validateControl(c.Control); err != nil {
					return err
				}
			}
		}
	}
	if err := validateCharShapeRefs(p); err != nil {
		return err
	}
	if err := validateFieldMatching(p); err != nil {
		return err
	}
	if err := validateRangeTags(p); err != nil {
		return err
	}
	return nil
}

// validateCharShapeRefs checks that refs are strictly increasing in
// position and that position 0 is always present.
func validateCharShapeRefs(p *Paragraph) error {
	if len(p.CharShapeRefs) == 0 {
		return warn.InvariantViolation("paragraph has no char-shape ref at position 0")
	}
	if p.CharShapeRefs[0].Position != 0 {
		return warn.InvariantViolation("paragraph's first char-shape ref is not at position 0")
	}
	length := uint32(p.UTF16Length()) + 1
	last := int64(-1)
	for _, r := range p.CharShapeRefs {
		if int64(r.Position) <= last {
			return warn.InvariantViolation("char-shape refs are not strictly increasing")
		}
		if r.Position >= length {
			return warn.InvariantViolation("char-shape ref position out of bounds")
		}
		last = int64(r.Position)
	}
	return nil
}

// validateFieldMatching checks that exactly one FieldEnd exists per
// FieldStart.ID, later in the same run sequence.
func validateFieldMatching(p *Paragraph) error {
	open := map[uint32]bool{}
	for _, r := range p.Runs {
		for _, c := range r.Content {
			switch c.Kind {
			case ContentFieldStart:
				if c.FieldStart == nil {
					continue
				}
				if open[c.FieldStart.ID] {
					return warn.InvariantViolation("duplicate field start id")
				}
				open[c.FieldStart.ID] = true
			case ContentFieldEnd:
				if c.FieldEnd == nil {
					continue
				}
				if !open[c.FieldEnd.ID] {
					return warn.InvariantViolation("unmatched field end")
				}
				delete(open, c.FieldEnd.ID)
			}
		}
	}
	if len(open) > 0 {
		return warn.InvariantViolation("unmatched field start")
	}
	return nil
}

// validateRangeTags checks that same-kind tags nest or stay disjoint,
// never partially overlap.
func validateRangeTags(p *Paragraph) error {
	byKind := map[RangeTagKind][]RangeTag{}
	for _, t := range p.RangeTags {
		if t.Start >= t.End {
			return warn.InvariantViolation("range tag start >= end")
		}
		byKind[t.Kind] = append(byKind[t.Kind], t)
	}
	for _, tags := range byKind {
		for i := 0; i < len(tags); i++ {
			for j := i + 1; j < len(tags); j++ {
				a, b := tags[i], tags[j]
				nested := (a.Start <= b.Start && b.End <= a.End) || (b.Start <= a.Start && a.End <= b.End)
				disjoint := a.End <= b.Start || b.End <= a.Start
				if !nested && !disjoint {
					return warn.InvariantViolation("range tags of the same kind partially overlap")
				}
			}
		}
	}
	return nil
}

func (d *Document) validateControl(c *Control) error {
	if c.Kind == ControlTable && c.Table != nil {
		return validateTable(c.Table)
	}
	return nil
}

// validateTable checks that zones lie inside the declared grid and
// that every cell fits inside it.
func validateTable(t *Table) error {
	for _, cell := range t.Cells {
		if cell.Row+cell.RowSpan > t.Rows || cell.Column+cell.ColSpan > t.Columns {
			return warn.InvariantViolation("table cell exceeds declared grid")
		}
	}
	for _, z := range t.Zones {
		if z.EndRow > t.Rows || z.EndCol > t.Columns {
			return warn.InvariantViolation("table zone exceeds declared grid")
		}
	}
	return nil
}
