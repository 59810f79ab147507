package linkedin

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// dayMillis spaces mock listing ages one day apart.
const dayMillis = 86_400_000

// mockListings builds representative search results shaped like the
// live API payload.
func mockListings(query domain.JobQuery, count int) []domain.JobListing {
	title := strings.TrimSpace(query.Keywords)
	if title == "" {
		title = "Software Engineer"
	}
	location := strings.TrimSpace(query.Location)
	if location == "" {
		location = "Remote"
	}

	now := time.Now().UnixMilli()
	listings := make([]domain.JobListing, 0, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("mock-job-%d", i+1)
		company := fmt.Sprintf("Mock Company %d", (i%5)+1)
		jobTitle := fmt.Sprintf("%s %d", title, i+1)

		listings = append(listings, domain.JobListing{
			ID:          id,
			Title:       jobTitle,
			CompanyName: company,
			Location: domain.JobLocation{
				Name:    location,
				Country: "US",
				City:    cityOf(location),
			},
			ListedAt: now - int64(i)*dayMillis,
			ApplyURL: "https://www.linkedin.com/jobs/view/" + id,
			Description: fmt.Sprintf(
				"This is a mock job description for %s at %s. The position is located in %s "+
					"and requires skills in programming, communication, and problem-solving.",
				jobTitle, company, location),
			EmploymentStatus: "FULL_TIME",
			ExperienceLevel:  "MID_SENIOR",
			Industries:       []string{"Technology", "Software Development"},
		})
	}
	return listings
}

// mockDetail builds one detailed listing for any mock job ID.
func mockDetail(jobID string) *domain.JobListing {
	if strings.TrimSpace(jobID) == "" {
		return nil
	}

	number := 1
	if idx := strings.LastIndex(jobID, "-"); idx >= 0 {
		fmt.Sscanf(jobID[idx+1:], "%d", &number)
	}
	company := fmt.Sprintf("Mock Company %d", number%5+1)

	return &domain.JobListing{
		ID:          jobID,
		Title:       fmt.Sprintf("Software Engineer %d", number),
		CompanyName: company,
		Location: domain.JobLocation{
			Name:       "San Francisco, CA",
			Country:    "US",
			City:       "San Francisco",
			PostalCode: "94105",
		},
		ListedAt: time.Now().UnixMilli() - int64(number)*dayMillis,
		ApplyURL: "https://www.linkedin.com/jobs/view/" + jobID,
		Description: company + " is seeking a talented Software Engineer to join our team.\n" +
			"Responsibilities: design and develop high-quality software solutions, collaborate " +
			"with cross-functional teams, write clean scalable code, participate in code reviews.\n" +
			"Requirements: Bachelor's degree in Computer Science or related field, 3+ years of " +
			"software development experience, proficiency with web frameworks and cloud services.\n" +
			"Benefits: competitive salary, health insurance, flexible work arrangements.",
		EmploymentStatus: "FULL_TIME",
		ExperienceLevel:  "MID_SENIOR",
		Industries:       []string{"Technology", "Software Development"},
	}
}

// cityOf extracts the city component from a "City, Region" location.
func cityOf(location string) string {
	if idx := strings.Index(location, ","); idx >= 0 {
		return strings.TrimSpace(location[:idx])
	}
	return location
}
