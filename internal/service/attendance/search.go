package attendance

import (
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/validator"
)

// FilterByIdentity filters reconciled records by an opaque identity token.
// A 24-character hexadecimal token (either case) is an employee object id and
// filters to exact id equality; only the hex shape check is case-insensitive,
// the comparison itself is not. Any other token passes the list through
// untouched. Free-text name search is not resolved here: the dashboard's
// employee picker turns names into ids upstream.
func FilterByIdentity(records []attendance.ReconciledRecordResponse, token string) []attendance.ReconciledRecordResponse {
	if !validator.IsValidEmployeeObjectID(token) {
		return records
	}
	filtered := make([]attendance.ReconciledRecordResponse, 0, len(records))
	for _, rec := range records {
		if rec.EmployeeID == token {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// Pager tracks the page position across search-token changes. The page resets
// to 1 only when the token actually changes value; clearing an already-empty
// token keeps the current page. Like FetchCycle it is for stateful
// presentation callers; the stateless HTTP shell takes page and token per
// request instead.
type Pager struct {
	page  int
	token string
}

func NewPager() *Pager {
	return &Pager{page: 1}
}

func (p *Pager) Page() int {
	return p.page
}

func (p *Pager) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	p.page = page
}

// SetSearchToken records the new token and reports whether the page was reset.
func (p *Pager) SetSearchToken(token string) bool {
	if token == p.token {
		return false
	}
	p.token = token
	p.page = 1
	return true
}

func (p *Pager) SearchToken() string {
	return p.token
}

// Paginate slices one page out of the record list. An out-of-range page
// yields an empty slice, not an error.
func Paginate(records []attendance.ReconciledRecordResponse, page, limit int) []attendance.ReconciledRecordResponse {
	if page < 1 || limit < 1 {
		return []attendance.ReconciledRecordResponse{}
	}
	start := (page - 1) * limit
	if start >= len(records) {
		return []attendance.ReconciledRecordResponse{}
	}
	end := start + limit
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
