package jobs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/degree"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/listing"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/listing/listingtest"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/query"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/taxonomy"
)

func testTaxonomy() *taxonomy.Taxonomy {
	return taxonomy.New(
		map[string][]string{"backend": {"backend"}, "intern": {"junior"}},
		map[string][]string{"python": {"python"}, "react": {"react"}},
	)
}

func TestPresent(t *testing.T) {
	l := listing.RawListing{
		ID:           "1",
		Name:         "Junior Python Developer",
		AlternateURL: "https://hh.ru/vacancy/1",
		PublishedAt:  "2021-05-03T10:00:00",
		Employer:     listing.Employer{Name: "Acme", LogoURLs: nil},
		Area:         listing.Area{Name: "Москва"},
		Snippet:      listing.Snippet{Requirement: listingtest.Ptr("знание React")},
	}
	got := Present(testTaxonomy(), l)

	assert.Equal(t, Job{
		Name:         "Junior Python Developer",
		Employer:     "Acme",
		EmployerLogo: NoPhoto,
		Tags:         Tags{Type: []string{"intern"}, Tech: []string{"python", "react"}, City: "Москва"},
		URL:          "https://hh.ru/vacancy/1",
		Date:         "2021-05-03",
	}, got)
}

func TestPresent_Logo(t *testing.T) {
	tax := testTaxonomy()
	withLogo := listing.RawListing{Employer: listing.Employer{LogoURLs: &listing.LogoURLs{Original: "https://img/x.png"}}}
	assert.Equal(t, "https://img/x.png", Present(tax, withLogo).EmployerLogo)

	emptyOriginal := listing.RawListing{Employer: listing.Employer{LogoURLs: &listing.LogoURLs{}}}
	assert.Equal(t, NoPhoto, Present(tax, emptyOriginal).EmployerLogo)
}

func TestPresent_JSONShape(t *testing.T) {
	data, err := json.Marshal(Present(testTaxonomy(), listing.RawListing{Name: "Бухгалтер"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Бухгалтер", "employer": "", "employer_logo": "/static/nophoto.png",
		"tags": {"type": [], "tech": [], "city": ""}, "url": "", "date": ""
	}`, string(data))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "2021-05-03", Date("2021-05-03T10:00:00+0300"))
	assert.Equal(t, "2021-05-03", Date("2021-05-03"))
	assert.Equal(t, "2021", Date("2021"))
}

func TestLoad(t *testing.T) {
	fetcher := &listingtest.Fetcher{
		Page: listing.Page{Pages: 4, Items: []listing.RawListing{
			{ID: "1", Name: "Python backend", URL: "https://api.hh.ru/vacancies/1",
				Snippet: listing.Snippet{Requirement: listingtest.Ptr("Высшее образование")}},
			{ID: "2", Name: "React developer", URL: "https://api.hh.ru/vacancies/2",
				Snippet: listing.Snippet{Requirement: listingtest.Ptr("Опыт от года")}},
		}},
	}
	uc := NewService(fetcher, degree.NewFilter(fetcher, nil), testTaxonomy(), nil)

	res, err := uc.Load(context.Background(), query.Selection{Tech: []string{"react"}}, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Pages)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, "React developer", res.Jobs[0].Name)
	assert.Equal(t, []string{"react"}, res.Jobs[0].Tags.Tech)

	assert.Equal(t, []string{" AND (react) AND "}, fetcher.Queries)
	assert.Equal(t, []int{2}, fetcher.PageNums)
}

func TestLoad_PageError(t *testing.T) {
	fetcher := &listingtest.Fetcher{PageErr: listing.ErrNetwork}
	uc := NewService(fetcher, degree.NewFilter(fetcher, nil), testTaxonomy(), nil)

	_, err := uc.Load(context.Background(), query.Selection{}, 0)
	assert.ErrorIs(t, err, listing.ErrNetwork)
}

func TestLoad_EmptyPage(t *testing.T) {
	fetcher := &listingtest.Fetcher{Page: listing.Page{Pages: 0}}
	uc := NewService(fetcher, degree.NewFilter(fetcher, nil), testTaxonomy(), nil)

	res, err := uc.Load(context.Background(), query.Selection{}, 0)
	require.NoError(t, err)
	assert.NotNil(t, res.Jobs)
	assert.Empty(t, res.Jobs)
}

func TestGet(t *testing.T) {
	fetcher := &listingtest.Fetcher{Details: map[string]listing.RawListing{
		"7": {ID: "7", Name: "Backend Python", AlternateURL: "https://hh.ru/vacancy/7", PublishedAt: "2022-01-02T00:00:00"},
	}}
	uc := NewService(fetcher, degree.NewFilter(fetcher, nil), testTaxonomy(), nil)

	job, err := uc.Get(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, []string{"backend"}, job.Tags.Type)
	assert.Equal(t, []string{"python"}, job.Tags.Tech)
	assert.Equal(t, "2022-01-02", job.Date)

	fetcher.DetailErrs = map[string]error{"8": listing.ErrNetwork}
	_, err = uc.Get(context.Background(), "8")
	assert.ErrorIs(t, err, listing.ErrNetwork)
}
