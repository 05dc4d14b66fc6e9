package models

import "sort"

// Partner is an NGO donation partner. The registry below is static
// descriptive data, assembled once and never mutated at runtime; donation
// flows themselves happen on the partner's own site.
type Partner struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Logo         string            `json:"logo"`
	Website      string            `json:"website"`
	DonationLink string            `json:"donationLink"`
	Transparency TransparencyScore `json:"transparency"`
}

// TransparencyScore grades how verifiable a partner's planting claims are.
type TransparencyScore struct {
	Score     int                   `json:"score"` // 0-100
	Level     string                `json:"level"` // Platinum, Gold, Silver, Bronze
	Breakdown TransparencyBreakdown `json:"breakdown"`
}

type TransparencyBreakdown struct {
	Financials      bool `json:"financials"`      // public audits available
	ImpactTracking  bool `json:"impactTracking"`  // GPS coordinates / photos provided
	OpenData        bool `json:"openData"`        // API or downloadable reports
	CommunityReview bool `json:"communityReview"` // third-party verification
}

var partnerRegistry = []Partner{
	{
		ID:           "tree-nation",
		Name:         "Tree-Nation",
		Description:  "A global platform connecting citizens and companies with tree planting projects around the world. Known for their \"Net Zero\" mission and detailed project validation.",
		Logo:         "/logos/tree-nation.png",
		Website:      "https://tree-nation.com",
		DonationLink: "https://tree-nation.com/plant/myself",
		Transparency: TransparencyScore{
			Score: 95,
			Level: "Platinum",
			Breakdown: TransparencyBreakdown{
				Financials:      true,
				ImpactTracking:  true,
				OpenData:        true,
				CommunityReview: true,
			},
		},
	},
	{
		ID:           "donatekart",
		Name:         "DonateKart",
		Description:  "An Indian transparent crowdfunding platform where you can donate products (like saplings) instead of money, ensuring your donation reaches the beneficiary directly.",
		Logo:         "/logos/donatekart.png",
		Website:      "https://www.donatekart.com",
		DonationLink: "https://www.donatekart.com/explore/environment",
		Transparency: TransparencyScore{
			Score: 94,
			Level: "Platinum",
			Breakdown: TransparencyBreakdown{
				Financials:      true,
				ImpactTracking:  true,
				OpenData:        true,
				CommunityReview: true,
			},
		},
	},
	{
		ID:           "one-tree-planted",
		Name:         "One Tree Planted",
		Description:  "A non-profit organization focused on global reforestation. They plant one tree for every dollar donated, working with partners across 47+ countries.",
		Logo:         "/logos/one-tree-planted.png",
		Website:      "https://onetreeplanted.org",
		DonationLink: "https://onetreeplanted.org/products/plant-trees",
		Transparency: TransparencyScore{
			Score: 92,
			Level: "Platinum",
			Breakdown: TransparencyBreakdown{
				Financials:      true,
				ImpactTracking:  true,
				OpenData:        true,
				CommunityReview: true,
			},
		},
	},
	{
		ID:           "sankalpa-taru",
		Name:         "SankalpaTaru",
		Description:  "One of India's largest IT-enabled NGOs, leveraging technology like GPS tagging and blockchain to ensure transparency in tree planting initiatives across the country.",
		Logo:         "/logos/sankalpa-taru.png",
		Website:      "https://sankalpataru.org",
		DonationLink: "https://sankalpataru.org/plant-trees/",
		Transparency: TransparencyScore{
			Score: 90,
			Level: "Gold",
			Breakdown: TransparencyBreakdown{
				Financials:      true,
				ImpactTracking:  true,
				OpenData:        false,
				CommunityReview: true,
			},
		},
	},
	{
		ID:           "eden-reforestation",
		Name:         "Eden Reforestation Projects",
		Description:  "Works with local communities to restore forests on a massive scale, creating jobs and protecting ecosystems in developing nations. Known for their \"Employ to Plant\" methodology.",
		Logo:         "/logos/eden-reforestation.png",
		Website:      "https://www.edenprojects.org",
		DonationLink: "https://www.edenprojects.org/donate",
		Transparency: TransparencyScore{
			Score: 88,
			Level: "Gold",
			Breakdown: TransparencyBreakdown{
				Financials:      true,
				ImpactTracking:  true,
				OpenData:        false,
				CommunityReview: true,
			},
		},
	},
	{
		ID:           "isha-outreach",
		Name:         "Isha Outreach (Cauvery Calling)",
		Description:  "A massive ecological movement focusing on revitalizing the Cauvery river. It aims to support farmers to plant 2.42 billion trees through agroforestry.",
		Logo:         "/logos/isha-outreach.png",
		Website:      "https://www.ishaoutreach.org/en/cauvery-calling",
		DonationLink: "https://www.ishaoutreach.org/en/cauvery-calling/plant-trees",
		Transparency: TransparencyScore{
			Score: 85,
			Level: "Gold",
			Breakdown: TransparencyBreakdown{
				Financials:      true,
				ImpactTracking:  false,
				OpenData:        true,
				CommunityReview: true,
			},
		},
	},
}

// AllPartners returns the registry ordered by transparency score descending.
func AllPartners() []Partner {
	out := make([]Partner, len(partnerRegistry))
	copy(out, partnerRegistry)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Transparency.Score > out[j].Transparency.Score
	})
	return out
}

// PartnerByID looks up a partner by its registry ID.
func PartnerByID(id string) (Partner, bool) {
	for _, p := range partnerRegistry {
		if p.ID == id {
			return p, true
		}
	}
	return Partner{}, false
}
