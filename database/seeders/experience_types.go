package seeders

import (
	"log"

	"chef-catering/models/experiencetype"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

// SeedExperienceTypes inserts the default bookable experiences. Existing
// slugs are left untouched so admin edits survive restarts.
func SeedExperienceTypes(db *gorm.DB) {
	log.Printf("🔍 Checking experience types data integrity...")

	types := []experiencetype.ExperienceType{
		{
			Slug:                  "plated-dinner",
			Name:                  "Plated Dinner",
			Description:           strPtr("A multi-course dinner plated and served at your location by the chef."),
			PricingType:           experiencetype.PricingPerPerson,
			PricePerUnit:          intPtr(14999),
			LocationType:          experiencetype.LocationCustomer,
			RequiresAdvanceNotice: true,
			AdvanceNoticeDays:     3,
			TimeSlotStart:         strPtr("17:00"),
			TimeSlotEnd:           strPtr("21:00"),
			TimeSlotInterval:      intPtr(30),
			MinPartySize:          2,
			MaxPartySize:          intPtr(12),
			IsActive:              true,
			IsFeatured:            true,
			SortOrder:             1,
		},
		{
			Slug:                  "buffet-style",
			Name:                  "Buffet Style",
			Description:           strPtr("A self-serve buffet prepared on site for larger gatherings."),
			PricingType:           experiencetype.PricingPerPerson,
			PricePerUnit:          intPtr(9999),
			LocationType:          experiencetype.LocationCustomer,
			RequiresAdvanceNotice: true,
			AdvanceNoticeDays:     5,
			TimeSlotStart:         strPtr("11:00"),
			TimeSlotEnd:           strPtr("20:00"),
			TimeSlotInterval:      intPtr(60),
			MinPartySize:          10,
			MaxPartySize:          intPtr(60),
			IsActive:              true,
			SortOrder:             2,
		},
		{
			Slug:                 "pickup",
			Name:                 "Chef's Pickup",
			Description:          strPtr("Order prepared dishes for pickup at the chef's kitchen."),
			PricingType:          experiencetype.PricingProductBased,
			IsProductBased:       true,
			LocationType:         experiencetype.LocationFixed,
			FixedLocationAddress: strPtr("Chef's Kitchen, 12 Market Street"),
			TimeSlotStart:        strPtr("10:00"),
			TimeSlotEnd:          strPtr("18:00"),
			TimeSlotInterval:     intPtr(15),
			MinPartySize:         1,
			IsActive:             true,
			SortOrder:            3,
		},
	}

	for _, et := range types {
		var existing experiencetype.ExperienceType
		err := db.Where("slug = ?", et.Slug).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&et).Error; err != nil {
				log.Printf("❌ Failed to seed experience type %s: %v", et.Slug, err)
			} else {
				log.Printf("✅ Seeded experience type %s", et.Slug)
			}
		} else if err != nil {
			log.Printf("❌ Failed to check experience type %s: %v", et.Slug, err)
		}
	}
}
