package store

import "github.com/achrafgam07/realnest/internal/model"

// Reference dataset used to seed a collection the first time a store
// runs against an empty backend. Once a record has been persisted the
// seed is never consulted again for that collection; the persisted copy
// is loaded verbatim. Each function returns a fresh slice so callers
// can mutate the result freely.

func seedUsers() []model.User {
	return []model.User{
		{
			ID:        "u_agent",
			Email:     "agent@realnest.com",
			FirstName: "Sarah",
			LastName:  "Connor",
			Role:      model.RoleAgent,
			AvatarURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
		},
		{
			ID:        "u_owner",
			Email:     "owner@realnest.com",
			FirstName: "Robert",
			LastName:  "Sterling",
			Role:      model.RoleOwner,
			AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
		},
		{
			ID:        "u_tenant",
			Email:     "tenant@realnest.com",
			FirstName: "Emily",
			LastName:  "Chen",
			Role:      model.RoleTenant,
			AvatarURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
		},
		{
			ID:        "u_admin",
			Email:     "admin@realnest.com",
			FirstName: "Marcus",
			LastName:  "Wright",
			Role:      model.RoleAdmin,
			AvatarURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
		},
	}
}

func seedProperties() []model.Property {
	return []model.Property{
		{
			ID:           "p1",
			Title:        "Modern Waterfront Apartment",
			Description:  "Stunning 2-bedroom apartment with panoramic ocean views. Features include a modern kitchen, spacious balcony, and access to a private pool. Located in the heart of the marina district, you are steps away from fine dining and entertainment.",
			PriceCents:   45000000, // 450k
			Currency:     "EUR",
			Address:      "12 Marina Blvd",
			City:         "Barcelona",
			Country:      "Spain",
			PropertyType: model.TypeApartment,
			Status:       model.StatusAvailable,
			Bedrooms:     2,
			Bathrooms:    2,
			AreaSqm:      95,
			AgentName:    "Sarah Connor",
			Images: []model.PropertyImage{
				{ID: "i1", URL: "https://images.unsplash.com/photo-1512918760532-3ed4659b2132?auto=format&fit=crop&w=1600&q=80", Order: 1},
				{ID: "i2", URL: "https://images.unsplash.com/photo-1484154218962-a1c002085d2f?auto=format&fit=crop&w=1600&q=80", Order: 2},
			},
		},
		{
			ID:           "p2",
			Title:        "Luxury Villa in the Hills",
			Description:  "Exclusive 5-bedroom villa located in the quiet hills. Large garden, private infinity pool, and smart home integration throughout. Perfect for those seeking privacy and luxury.",
			PriceCents:   125000000, // 1.25M
			Currency:     "EUR",
			Address:      "45 Hilltop Rd",
			City:         "Nice",
			Country:      "France",
			PropertyType: model.TypeVilla,
			Status:       model.StatusAvailable,
			Bedrooms:     5,
			Bathrooms:    4,
			AreaSqm:      350,
			AgentName:    "Sarah Connor",
			Images: []model.PropertyImage{
				{ID: "i3", URL: "https://images.unsplash.com/photo-1613490493576-7fde63acd811?auto=format&fit=crop&w=1600&q=80", Order: 1},
				{ID: "i4", URL: "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?auto=format&fit=crop&w=1600&q=80", Order: 2},
			},
		},
		{
			ID:           "p3",
			Title:        "Downtown Commercial Space",
			Description:  "Prime location for a retail store or office. High foot traffic area with large display windows. Recently renovated with modern fixtures.",
			PriceCents:   320000,
			Currency:     "EUR",
			Address:      "88 High St",
			City:         "London",
			Country:      "UK",
			PropertyType: model.TypeCommercial,
			Status:       model.StatusRented,
			Bedrooms:     0,
			Bathrooms:    1,
			AreaSqm:      120,
			AgentName:    "Marcus Wright",
			Images: []model.PropertyImage{
				{ID: "i5", URL: "https://images.unsplash.com/photo-1497366216548-37526070297c?auto=format&fit=crop&w=1600&q=80", Order: 1},
			},
		},
		{
			ID:           "p4",
			Title:        "Cozy City Studio",
			Description:  "Perfect for young professionals. Close to metro station and city center. Includes a compact kitchenette and modern bathroom.",
			PriceCents:   21000000,
			Currency:     "EUR",
			Address:      "22 Baker St",
			City:         "London",
			Country:      "UK",
			PropertyType: model.TypeApartment,
			Status:       model.StatusUnderContract,
			Bedrooms:     1,
			Bathrooms:    1,
			AreaSqm:      45,
			AgentName:    "Sarah Connor",
			Images: []model.PropertyImage{
				{ID: "i6", URL: "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?auto=format&fit=crop&w=1600&q=80", Order: 1},
			},
		},
		{
			ID:           "p5",
			Title:        "Minimalist Modern Home",
			Description:  "Architecturally designed home featuring clean lines, open spaces, and abundant natural light. A true masterpiece of modern living.",
			PriceCents:   85000000,
			Currency:     "EUR",
			Address:      "101 Design Ave",
			City:         "Berlin",
			Country:      "Germany",
			PropertyType: model.TypeVilla,
			Status:       model.StatusAvailable,
			Bedrooms:     3,
			Bathrooms:    3,
			AreaSqm:      180,
			AgentName:    "Marcus Wright",
			Images: []model.PropertyImage{
				{ID: "i7", URL: "https://images.unsplash.com/photo-1600596542815-2a4d9f6facb8?auto=format&fit=crop&w=1600&q=80", Order: 1},
			},
		},
		{
			ID:           "p6",
			Title:        "Historic Townhouse",
			Description:  "Beautifully preserved townhouse with original features. Located in a historic district with cobblestone streets.",
			PriceCents:   62000000,
			Currency:     "EUR",
			Address:      "14 Old Town Sq",
			City:         "Prague",
			Country:      "Czech Republic",
			PropertyType: model.TypeApartment,
			Status:       model.StatusSold,
			Bedrooms:     4,
			Bathrooms:    2,
			AreaSqm:      210,
			AgentName:    "Robert Sterling",
			Images: []model.PropertyImage{
				{ID: "i8", URL: "https://images.unsplash.com/photo-1505577058444-a3dab90d4253?auto=format&fit=crop&w=1600&q=80", Order: 1},
			},
		},
	}
}

func seedBookings() []model.Booking {
	return []model.Booking{
		{
			ID:              "b1",
			PropertyID:      "p1",
			PropertyName:    "Modern Waterfront Apartment",
			StartDate:       "2023-11-10",
			EndDate:         "2023-11-15",
			Status:          model.BookingConfirmed,
			TotalPriceCents: 120000,
		},
		{
			ID:              "b2",
			PropertyID:      "p2",
			PropertyName:    "Luxury Villa in the Hills",
			StartDate:       "2023-12-20",
			EndDate:         "2023-12-27",
			Status:          model.BookingPending,
			TotalPriceCents: 550000,
		},
		{
			ID:              "b3",
			PropertyID:      "p5",
			PropertyName:    "Minimalist Modern Home",
			StartDate:       "2024-01-05",
			EndDate:         "2024-01-12",
			Status:          model.BookingConfirmed,
			TotalPriceCents: 350000,
		},
	}
}

func seedRevenue() []model.RevenueData {
	return []model.RevenueData{
		{Name: "Jan", Revenue: 42000, Bookings: 24},
		{Name: "Feb", Revenue: 38000, Bookings: 18},
		{Name: "Mar", Revenue: 51000, Bookings: 28},
		{Name: "Apr", Revenue: 47000, Bookings: 25},
		{Name: "May", Revenue: 62000, Bookings: 32},
		{Name: "Jun", Revenue: 75000, Bookings: 38},
		{Name: "Jul", Revenue: 84000, Bookings: 43},
		{Name: "Aug", Revenue: 81000, Bookings: 40},
		{Name: "Sep", Revenue: 68000, Bookings: 35},
	}
}
