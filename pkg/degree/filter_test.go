package degree

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/listing"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/listing/listingtest"
)

func raw(id, requirement string) listing.RawListing {
	return listing.RawListing{
		ID:      id,
		Name:    "vacancy " + id,
		URL:     "https://api.hh.ru/vacancies/" + id,
		Snippet: listing.Snippet{Requirement: listingtest.Ptr(requirement)},
	}
}

func ids(ls []listing.RawListing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	fetcher := &listingtest.Fetcher{Details: map[string]listing.RawListing{
		"3": {ID: "3", Description: "<p>Требуется ВУЗ</p>"},
		"4": {ID: "4", Description: "Опыт работы с Python"},
	}}
	f := NewFilter(fetcher, nil)

	noReq := raw("2", "")
	noReq.Snippet.Requirement = nil

	in := []listing.RawListing{
		raw("1", "Высшее образование, опыт от 3 лет"),
		noReq,
		raw("3", "Знание SQL"),
		raw("4", "Знание Python"),
		raw("5", "Готовность учиться"),
	}
	out, err := f.Apply(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{"4", "5"}, ids(out))
	// listing without requirement never reaches the upstream
	assert.NotContains(t, fetcher.DetailCalls, "2")
}

func TestApply_MalformedDetailIsSkipped(t *testing.T) {
	fetcher := &listingtest.Fetcher{DetailErrs: map[string]error{
		"1": listing.ErrParse,
		"2": listing.ErrMissingField,
	}}
	out, err := NewFilter(fetcher, nil).Apply(context.Background(), []listing.RawListing{
		raw("1", "a"), raw("2", "b"), raw("3", "c"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(out))
}

func TestApply_NetworkErrorAborts(t *testing.T) {
	fetcher := &listingtest.Fetcher{DetailErrs: map[string]error{"2": listing.ErrNetwork}}
	_, err := NewFilter(fetcher, nil).Apply(context.Background(), []listing.RawListing{
		raw("1", "a"), raw("2", "b"), raw("3", "c"),
	})
	assert.ErrorIs(t, err, listing.ErrNetwork)
	assert.Equal(t, []string{"1", "2"}, fetcher.DetailCalls)
}

func TestApply_Empty(t *testing.T) {
	out, err := NewFilter(&listingtest.Fetcher{}, nil).Apply(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestMentions(t *testing.T) {
	f := NewFilter(nil, nil)
	assert.True(t, f.Mentions("Высшее образование"))
	assert.True(t, f.Mentions("Bachelor's DEGREE in CS"))
	assert.False(t, f.Mentions("Опыт коммерческой разработки"))

	custom := NewFilter(nil, nil, " MBA ", "")
	assert.True(t, custom.Mentions("mba preferred"))
	assert.False(t, custom.Mentions("высшее образование"))
}

func TestApply_ContextCanceled(t *testing.T) {
	fetcher := &listingtest.Fetcher{DetailErrs: map[string]error{"1": context.Canceled}}
	_, err := NewFilter(fetcher, nil).Apply(context.Background(), []listing.RawListing{raw("1", "a")})
	assert.True(t, errors.Is(err, context.Canceled))
}
