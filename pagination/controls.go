package pagination

// Control is one entry of the page-control sequence: either a page number or
// an ellipsis standing for two or more hidden pages.
type Control struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

// Controls builds the compact control sequence for totalPages pages.
//
// The first and last pages are always present, together with siblings pages on
// each side of currentPage. A hole of exactly one page is filled with that
// page; a larger hole becomes a single ellipsis.
func Controls(totalPages, currentPage, siblings int) []Control {
	if totalPages <= 0 {
		return []Control{}
	}
	if siblings < 0 {
		siblings = 0
	}
	currentPage = clamp(currentPage, 1, totalPages)

	lo := max(currentPage-siblings, 1)
	hi := min(currentPage+siblings, totalPages)

	visible := make([]int, 0, hi-lo+3)
	visible = append(visible, 1)
	for p := lo; p <= hi; p++ {
		if p != 1 && p != totalPages {
			visible = append(visible, p)
		}
	}
	if totalPages > 1 {
		visible = append(visible, totalPages)
	}

	out := make([]Control, 0, len(visible)+2)
	prev := 0
	for _, p := range visible {
		switch gap := p - prev - 1; {
		case prev == 0 || gap == 0:
		case gap == 1:
			out = append(out, Control{Page: prev + 1})
		default:
			out = append(out, Control{Ellipsis: true})
		}
		out = append(out, Control{Page: p, Current: p == currentPage})
		prev = p
	}
	return out
}
