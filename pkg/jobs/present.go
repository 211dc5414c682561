package jobs

import (
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/listing"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/tagger"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/taxonomy"
)

// Present reshapes a raw listing into a Job. Tags are computed from name + requirement.
func Present(tax *taxonomy.Taxonomy, l listing.RawListing) Job {
	tags := tagger.Tag(tax, l.Name+l.RequirementText())
	logo := NoPhoto
	if l.Employer.LogoURLs != nil && l.Employer.LogoURLs.Original != "" {
		logo = l.Employer.LogoURLs.Original
	}
	return Job{
		Name:         l.Name,
		Employer:     l.Employer.Name,
		EmployerLogo: logo,
		Tags:         NewTags(tags, l.Area.Name),
		URL:          l.AlternateURL,
		Date:         Date(l.PublishedAt),
	}
}

// NewTags converts tagger output into the JSON shape.
func NewTags(t tagger.Tags, city string) Tags {
	out := Tags{Type: t.Type, Tech: t.Tech, City: city}
	if out.Type == nil {
		out.Type = []string{}
	}
	if out.Tech == nil {
		out.Tech = []string{}
	}
	return out
}

// Date keeps the calendar date of an ISO timestamp.
func Date(publishedAt string) string {
	if len(publishedAt) > 10 {
		return publishedAt[:10]
	}
	return publishedAt
}
