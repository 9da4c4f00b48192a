package client

import "context"

// Page holds one batch of records from a paginated endpoint.
type Page[T any] struct {
	Num     int
	Records []T
}

// fetchFunc fetches the records of one page. Page numbers start at 1.
type fetchFunc[T any] func(ctx context.Context, pgNum int) ([]T, error)

// Pager lazily walks a page-numbered endpoint. The sequence ends when the
// remote signals exhaustion: an empty page, or a page smaller than the page
// size. It is finite and non-restartable; once exhausted it stays exhausted.
type Pager[T any] struct {
	fetch    fetchFunc[T]
	pageSize int
	pgNum    int
	done     bool
}

func newPager[T any](pageSize int, fetch fetchFunc[T]) *Pager[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager[T]{fetch: fetch, pageSize: pageSize}
}

// Next returns the next non-empty page. ok is false once the sequence is
// exhausted. Remote failures surface unchanged and terminate the sequence;
// no request is issued past the terminating page.
func (p *Pager[T]) Next(ctx context.Context) (Page[T], bool, error) {
	if p.done {
		return Page[T]{}, false, nil
	}

	p.pgNum++
	records, err := p.fetch(ctx, p.pgNum)
	if err != nil {
		p.done = true
		return Page[T]{}, false, err
	}

	if len(records) == 0 {
		p.done = true
		return Page[T]{}, false, nil
	}
	if len(records) < p.pageSize {
		// Short page: yield it, but the sequence ends here.
		p.done = true
	}

	return Page[T]{Num: p.pgNum, Records: records}, true, nil
}

// ForEach drives the pager to exhaustion, invoking fn once per page. The
// first error from the remote or from fn stops the walk.
func (p *Pager[T]) ForEach(ctx context.Context, fn func(Page[T]) error) error {
	for {
		page, ok, err := p.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(page); err != nil {
			return err
		}
	}
}
