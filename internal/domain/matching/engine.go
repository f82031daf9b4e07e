package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"career-compass/internal/domain/job"
	"career-compass/internal/domain/user"
)

// Factor weights. Each factor contributes at most its own weight; the
// total is clamped to [0, 100].
const (
	skillsWeight   = 40.0
	locationWeight = 20.0
	salaryWeight   = 20.0
	recencyWeight  = 10.0

	environmentBonus = 10.0
	growthBonus      = 5.0

	// Flat bonus when the job's floor beats the user's floor but the
	// ranges do not overlap.
	aboveRangeBonus = 15.0

	recencyHorizonDays = 30.0
	recentDays         = 7.0
)

type Result struct {
	MatchScore int
	Reasons    []string
}

type RankedPosting struct {
	Posting    job.Posting
	MatchScore int
	Reasons    []string
}

// Score rates a single posting against the user's profile. It is pure:
// neither argument is mutated and no state is shared between calls.
// now anchors the recency factor.
func Score(p user.Profile, j job.Posting, now time.Time) Result {
	var score float64
	reasons := make([]string, 0, 6)

	// 1. Skills overlap, proportional to the larger tag set.
	if len(p.MatchingTags) > 0 && len(j.Tags) > 0 {
		overlap := 0
		for _, tag := range p.MatchingTags {
			if tagMatchesAny(tag, j.Tags) {
				overlap++
			}
		}
		denom := len(p.MatchingTags)
		if len(j.Tags) > denom {
			denom = len(j.Tags)
		}
		score += float64(overlap) / float64(denom) * skillsWeight
		if overlap > 0 {
			reasons = append(reasons, fmt.Sprintf("%d matching skills", overlap))
		}
	}

	// 2. Location, flat.
	remoteMatch := j.Remote && p.IncludeRemote
	locationMatch := false
	if j.Location != "" {
		for _, loc := range p.Locations {
			if loc == "" {
				continue
			}
			if containsFold(j.Location, loc) || containsFold(loc, j.Location) {
				locationMatch = true
				break
			}
		}
	}
	if remoteMatch || locationMatch {
		score += locationWeight
		if j.Remote {
			reasons = append(reasons, "Remote position")
		} else {
			reasons = append(reasons, "Location matches")
		}
	}

	// 3. Salary, only when both ranges are fully specified.
	if j.SalaryMin != nil && j.SalaryMax != nil && p.DesiredSalaryMin != nil && p.DesiredSalaryMax != nil {
		userMid := float64(*p.DesiredSalaryMin+*p.DesiredSalaryMax) / 2
		jobMid := float64(*j.SalaryMin+*j.SalaryMax) / 2

		overlaps := *j.SalaryMin <= *p.DesiredSalaryMax && *j.SalaryMax >= *p.DesiredSalaryMin
		switch {
		case overlaps:
			// A zero desired midpoint would make diff NaN; the
			// proximity term is skipped rather than scored.
			if userMid > 0 {
				diff := math.Abs(userMid-jobMid) / userMid
				score += math.Max(0, (1-diff)*salaryWeight)
			}
			reasons = append(reasons, "Salary in your range")
		case *j.SalaryMin >= *p.DesiredSalaryMin:
			// Pays more than desired.
			score += aboveRangeBonus
			reasons = append(reasons, "Above your salary range")
		}
	}

	// 4. Recency, linear decay over 30 days.
	if j.PostedAt != nil {
		daysSince := now.Sub(*j.PostedAt).Hours() / 24
		contrib := (1 - daysSince/recencyHorizonDays) * recencyWeight
		if contrib > recencyWeight {
			contrib = recencyWeight
		}
		if contrib > 0 {
			score += contrib
		}
		if daysSince < recentDays {
			reasons = append(reasons, "Posted recently")
		}
	}

	// 5. Work environment alignment.
	if p.WorkEnvironmentPref == user.WorkEnvironmentRemote && j.Remote {
		score += environmentBonus
		reasons = append(reasons, "Matches your remote preference")
	}
	if p.WorkEnvironmentPref == user.WorkEnvironmentHybrid && j.Hybrid {
		score += environmentBonus
		reasons = append(reasons, "Matches your hybrid preference")
	}
	if p.WorkEnvironmentPref != user.WorkEnvironmentOffice &&
		(j.Seniority == job.SenioritySenior || j.Seniority == job.SeniorityLead) {
		score += growthBonus
		reasons = append(reasons, "Growth opportunity")
	}

	final := int(math.Round(math.Min(100, math.Max(0, score))))

	if len(reasons) == 0 {
		reasons = append(reasons, "Potential match")
	}
	return Result{MatchScore: final, Reasons: reasons}
}

// Rank scores every posting, drops the zero-score ones and sorts the
// rest by score descending. Ties keep their original relative order.
// Malformed postings are skipped, never fail the whole pass.
func Rank(p user.Profile, postings []job.Posting, now time.Time) []RankedPosting {
	out := make([]RankedPosting, 0, len(postings))
	for _, j := range postings {
		if err := j.Validate(); err != nil {
			continue
		}
		res := Score(p, j, now)
		if res.MatchScore == 0 {
			continue
		}
		out = append(out, RankedPosting{Posting: j, MatchScore: res.MatchScore, Reasons: res.Reasons})
	}
	sort.SliceStable(out, func(i, k int) bool {
		return out[i].MatchScore > out[k].MatchScore
	})
	return out
}

// tagMatchesAny applies the case-insensitive both-direction substring
// heuristic carried over from the scoring design. "java" matching
// "javascript" is a known false positive of this rule.
func tagMatchesAny(tag string, jobTags []string) bool {
	if tag == "" {
		return false
	}
	for _, jt := range jobTags {
		if jt == "" {
			continue
		}
		if containsFold(jt, tag) || containsFold(tag, jt) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
