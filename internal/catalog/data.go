package catalog

var businesses = []Business{
	{
		ID:          "biz-1",
		Name:        "Cluj Hair Atelier",
		Description: "Signature cuts, color, and treatments by top stylists in Cluj-Napoca",
		Category:    "Hair & Beauty",
		Image:       "💇‍♀️",
		Location:    "Cluj-Napoca, Romania",
		Rating:      4.9,
		ReviewCount: 324,
		OnChainID:   "0x6d8e431be903e6c489cbed98c62cdf0268a9d4fd83c3b88d7b977d49c3ffd317",
		OpeningHours: WeekHours{
			Monday:    Hours{"09:00", "19:00"},
			Tuesday:   Hours{"09:00", "19:00"},
			Wednesday: Hours{"09:00", "19:00"},
			Thursday:  Hours{"09:00", "20:00"},
			Friday:    Hours{"09:00", "20:00"},
			Saturday:  Hours{"09:00", "17:00"},
			Sunday:    Hours{"10:00", "16:00"},
		},
		Services: []Service{
			{ID: "svc-1-1", Name: "Precision Haircut", Description: "Tailored cut with wash and style", Duration: 45, Price: 120},
			{ID: "svc-1-2", Name: "Balayage & Tone", Description: "Freehand lightening with custom toner", Duration: 120, Price: 380},
			{ID: "svc-1-3", Name: "Keratin Smoothing", Description: "Frizz control and shine boost treatment", Duration: 120, Price: 450},
			{ID: "svc-1-4", Name: "Consultation", Description: "Style and color plan with a lead stylist", Duration: 20, Price: 0},
		},
		Providers: []Provider{
			{ID: "prov-1-1", Name: "Andreea Pop", Specialty: "Color & Balayage", Rating: 4.9, OnChainID: "0xcf5b84c1a2926dd35ec1e980ae3cdc29d2140927a6aa5fcb403eb867ec46a582"},
			{ID: "prov-1-2", Name: "Mihai Ionescu", Specialty: "Precision Cuts", Rating: 4.8},
			{ID: "prov-1-3", Name: "Elena Radu", Specialty: "Keratin Treatments", Rating: 4.7},
		},
	},
	{
		ID:          "biz-2",
		Name:        "Napoca Style Studio",
		Description: "Color artistry, blonding, and healthy hair care in the heart of Cluj",
		Category:    "Hair & Beauty",
		Image:       "✂️",
		Location:    "Cluj-Napoca, Romania",
		Rating:      4.8,
		ReviewCount: 287,
		OpeningHours: WeekHours{
			Monday:    Hours{"08:00", "20:00"},
			Tuesday:   Hours{"08:00", "20:00"},
			Wednesday: Hours{"08:00", "20:00"},
			Thursday:  Hours{"08:00", "21:00"},
			Friday:    Hours{"08:00", "21:00"},
			Saturday:  Hours{"09:00", "18:00"},
			Sunday:    Hours{"10:00", "17:00"},
		},
		Services: []Service{
			{ID: "svc-2-1", Name: "Signature Blowout", Description: "Wash, scalp massage, and long-lasting finish", Duration: 60, Price: 110},
			{ID: "svc-2-2", Name: "Full Color Refresh", Description: "All-over color with gloss finish", Duration: 90, Price: 230},
			{ID: "svc-2-3", Name: "Highlights & Toner", Description: "Foil highlights with toner and bond builder", Duration: 120, Price: 340},
			{ID: "svc-2-4", Name: "Scalp Spa Ritual", Description: "Detox scrub, mask, and scalp massage", Duration: 50, Price: 150},
			{ID: "svc-2-5", Name: "Bridal Trial & Style", Description: "Consultation, trial updo, and day-of plan", Duration: 120, Price: 400},
		},
		Providers: []Provider{
			{ID: "prov-2-1", Name: "Laura Muresan", Specialty: "Blonding & Foils", Rating: 4.9},
			{ID: "prov-2-2", Name: "Irina Stan", Specialty: "Updos & Bridal", Rating: 4.8},
			{ID: "prov-2-3", Name: "Radu Marinescu", Specialty: "Men's Cuts", Rating: 4.7},
		},
	},
	{
		ID:          "biz-3",
		Name:        "Transylvanian Glow Salon",
		Description: "Glossing, treatments, and vibrant color focused on hair health",
		Category:    "Hair & Beauty",
		Image:       "💎",
		Location:    "Cluj-Napoca, Romania",
		Rating:      4.95,
		ReviewCount: 412,
		OpeningHours: WeekHours{
			Monday:    Hours{"10:00", "20:00"},
			Tuesday:   Hours{"10:00", "20:00"},
			Wednesday: Hours{"10:00", "20:00"},
			Thursday:  Hours{"10:00", "21:00"},
			Friday:    Hours{"10:00", "21:00"},
			Saturday:  Hours{"09:00", "19:00"},
			Sunday:    Hours{"11:00", "18:00"},
		},
		Services: []Service{
			{ID: "svc-3-1", Name: "Lived-in Blonde", Description: "Soft balayage with root melt and gloss", Duration: 150, Price: 400},
			{ID: "svc-3-2", Name: "Color Correction", Description: "Multi-step correction with bond rebuilding", Duration: 180, Price: 600},
			{ID: "svc-3-3", Name: "Luxury Hair Spa", Description: "Mask, steam, scalp massage, and trim", Duration: 75, Price: 180},
			{ID: "svc-3-4", Name: "Gloss & Haircut", Description: "Shine gloss with shaping cut", Duration: 70, Price: 170},
			{ID: "svc-3-5", Name: "Event Waves", Description: "Heat styling and finishing for events", Duration: 60, Price: 130},
		},
		Providers: []Provider{
			{ID: "prov-3-1", Name: "Alexandra Neves", Specialty: "Color Correction", Rating: 4.95},
			{ID: "prov-3-2", Name: "Victoria Sterling", Specialty: "Styling & Waves", Rating: 4.9},
			{ID: "prov-3-3", Name: "James Wilson", Specialty: "Treatments", Rating: 4.8},
		},
	},
	{
		ID:          "biz-4",
		Name:        "Central Park Barber & Color",
		Description: "Modern barbering, fades, and creative color in Cluj",
		Category:    "Hair & Beauty",
		Image:       "💈",
		Location:    "Cluj-Napoca, Romania",
		Rating:      4.7,
		ReviewCount: 198,
		OpeningHours: WeekHours{
			Monday:    Hours{"11:00", "20:00"},
			Tuesday:   Hours{"11:00", "20:00"},
			Wednesday: Hours{"11:00", "20:00"},
			Thursday:  Hours{"11:00", "21:00"},
			Friday:    Hours{"11:00", "21:00"},
			Saturday:  Hours{"10:00", "18:00"},
			Sunday:    Hours{"11:00", "17:00"},
		},
		Services: []Service{
			{ID: "svc-4-1", Name: "Skin Fade & Beard", Description: "Fade, beard sculpt, and hot towel", Duration: 50, Price: 100},
			{ID: "svc-4-2", Name: "Gray Blending", Description: "Natural-looking gray camo for men", Duration: 45, Price: 130},
			{ID: "svc-4-3", Name: "Creative Color", Description: "Vivid or pastel application with protectant", Duration: 120, Price: 300},
		},
		Providers: []Provider{
			{ID: "prov-4-1", Name: "Sorin Matei", Specialty: "Fades & Beard", Rating: 4.7},
			{ID: "prov-4-2", Name: "David Kim", Specialty: "Color & Camouflage", Rating: 4.6},
		},
	},
	{
		ID:          "biz-5",
		Name:        "Elite Beauty Center",
		Description: "Premium facial treatments, skincare, and microblading services",
		Category:    "Beauty & Aesthetics",
		Image:       "✨",
		Location:    "Cluj-Napoca, Romania",
		Rating:      4.85,
		ReviewCount: 256,
		OpeningHours: WeekHours{
			Monday:    Hours{"09:00", "18:00"},
			Tuesday:   Hours{"09:00", "18:00"},
			Wednesday: Hours{"09:00", "18:00"},
			Thursday:  Hours{"09:00", "19:00"},
			Friday:    Hours{"09:00", "19:00"},
			Saturday:  Hours{"10:00", "17:00"},
			Sunday:    Hours{"Closed", "Closed"},
		},
		Services: []Service{
			{ID: "svc-5-1", Name: "HydraFacial Treatment", Description: "Deep cleansing, extraction, and hydration", Duration: 60, Price: 280},
			{ID: "svc-5-2", Name: "Microblading", Description: "Natural-looking eyebrow enhancement", Duration: 120, Price: 550},
			{ID: "svc-5-3", Name: "Chemical Peel", Description: "Advanced skin resurfacing treatment", Duration: 45, Price: 220},
			{ID: "svc-5-4", Name: "LED Light Therapy", Description: "Anti-aging and acne treatment with LED", Duration: 30, Price: 150},
		},
		Providers: []Provider{
			{ID: "prov-5-1", Name: "Dr. Maria Popescu", Specialty: "Aesthetic Medicine", Rating: 4.9},
			{ID: "prov-5-2", Name: "Diana Luca", Specialty: "Microblading", Rating: 4.8},
		},
	},
	{
		ID:          "biz-6",
		Name:        "Radiant Spa & Wellness",
		Description: "Massage therapy, body treatments, and holistic wellness",
		Category:    "Spa & Wellness",
		Image:       "🧘‍♀️",
		Location:    "Cluj-Napoca, Romania",
		Rating:      4.75,
		ReviewCount: 189,
		OpeningHours: WeekHours{
			Monday:    Hours{"10:00", "20:00"},
			Tuesday:   Hours{"10:00", "20:00"},
			Wednesday: Hours{"10:00", "20:00"},
			Thursday:  Hours{"10:00", "21:00"},
			Friday:    Hours{"10:00", "21:00"},
			Saturday:  Hours{"09:00", "19:00"},
			Sunday:    Hours{"10:00", "18:00"},
		},
		Services: []Service{
			{ID: "svc-6-1", Name: "Deep Tissue Massage", Description: "Therapeutic massage for muscle tension", Duration: 60, Price: 200},
			{ID: "svc-6-2", Name: "Hot Stone Therapy", Description: "Relaxing massage with heated stones", Duration: 90, Price: 280},
			{ID: "svc-6-3", Name: "Body Scrub & Wrap", Description: "Exfoliation and nourishing body wrap", Duration: 75, Price: 240},
			{ID: "svc-6-4", Name: "Aromatherapy Session", Description: "Essential oil massage for relaxation", Duration: 60, Price: 220},
		},
		Providers: []Provider{
			{ID: "prov-6-1", Name: "Ana Moldovan", Specialty: "Massage Therapy", Rating: 4.8},
			{ID: "prov-6-2", Name: "Cristian Vasilescu", Specialty: "Sports Massage", Rating: 4.7},
		},
	},
	{
		ID:          "biz-7",
		Name:        "Perfect Nails Studio",
		Description: "Luxury manicures, pedicures, and nail art design",
		Category:    "Nails & Beauty",
		Image:       "💅",
		Location:    "Cluj-Napoca, Romania",
		Rating:      4.9,
		ReviewCount: 342,
		OpeningHours: WeekHours{
			Monday:    Hours{"09:00", "19:00"},
			Tuesday:   Hours{"09:00", "19:00"},
			Wednesday: Hours{"09:00", "19:00"},
			Thursday:  Hours{"09:00", "20:00"},
			Friday:    Hours{"09:00", "20:00"},
			Saturday:  Hours{"10:00", "18:00"},
			Sunday:    Hours{"11:00", "17:00"},
		},
		Services: []Service{
			{ID: "svc-7-1", Name: "Gel Manicure", Description: "Long-lasting gel polish with nail care", Duration: 45, Price: 90},
			{ID: "svc-7-2", Name: "Luxury Pedicure", Description: "Spa pedicure with massage and polish", Duration: 60, Price: 120},
			{ID: "svc-7-3", Name: "Nail Art Design", Description: "Custom nail art and embellishments", Duration: 75, Price: 150},
			{ID: "svc-7-4", Name: "Acrylic Extensions", Description: "Full set of acrylic nail extensions", Duration: 90, Price: 180},
		},
		Providers: []Provider{
			{ID: "prov-7-1", Name: "Ioana Dragomir", Specialty: "Nail Art", Rating: 4.95},
			{ID: "prov-7-2", Name: "Raluca Petrescu", Specialty: "Gel Nails", Rating: 4.85},
		},
	},
	{
		ID:          "biz-8",
		Name:        "Brow & Lash Boutique",
		Description: "Eyebrow shaping, lash extensions, and permanent makeup",
		Category:    "Beauty & Aesthetics",
		Image:       "👁️",
		Location:    "Cluj-Napoca, Romania",
		Rating:      4.8,
		ReviewCount: 267,
		OpeningHours: WeekHours{
			Monday:    Hours{"10:00", "18:00"},
			Tuesday:   Hours{"10:00", "18:00"},
			Wednesday: Hours{"10:00", "18:00"},
			Thursday:  Hours{"10:00", "19:00"},
			Friday:    Hours{"10:00", "19:00"},
			Saturday:  Hours{"10:00", "17:00"},
			Sunday:    Hours{"Closed", "Closed"},
		},
		Services: []Service{
			{ID: "svc-8-1", Name: "Lash Extensions", Description: "Classic or volume lash extensions", Duration: 90, Price: 250},
			{ID: "svc-8-2", Name: "Brow Lamination", Description: "Semi-permanent brow styling", Duration: 45, Price: 140},
			{ID: "svc-8-3", Name: "Lash Lift & Tint", Description: "Natural lash enhancement with curl and color", Duration: 60, Price: 160},
			{ID: "svc-8-4", Name: "Brow Tinting", Description: "Professional eyebrow tinting", Duration: 30, Price: 70},
		},
		Providers: []Provider{
			{ID: "prov-8-1", Name: "Gabriela Ionita", Specialty: "Lash Extensions", Rating: 4.9},
			{ID: "prov-8-2", Name: "Simona Gheorghe", Specialty: "Brow Design", Rating: 4.75},
		},
	},
	{
		ID:          "biz-9",
		Name:        "Urban Skin Clinic",
		Description: "Medical-grade skincare, lasers, and anti-aging treatments",
		Category:    "Medical Aesthetics",
		Image:       "🏥",
		Location:    "Cluj-Napoca, Romania",
		Rating:      4.92,
		ReviewCount: 301,
		OpeningHours: WeekHours{
			Monday:    Hours{"09:00", "17:00"},
			Tuesday:   Hours{"09:00", "17:00"},
			Wednesday: Hours{"09:00", "17:00"},
			Thursday:  Hours{"09:00", "18:00"},
			Friday:    Hours{"09:00", "18:00"},
			Saturday:  Hours{"10:00", "15:00"},
			Sunday:    Hours{"Closed", "Closed"},
		},
		Services: []Service{
			{ID: "svc-9-1", Name: "Laser Hair Removal", Description: "Safe and effective hair reduction", Duration: 45, Price: 190},
			{ID: "svc-9-2", Name: "Botox Treatment", Description: "Wrinkle reduction with botulinum toxin", Duration: 30, Price: 400},
			{ID: "svc-9-3", Name: "Dermal Fillers", Description: "Volume restoration and contouring", Duration: 45, Price: 550},
			{ID: "svc-9-4", Name: "IPL Photo Facial", Description: "Skin rejuvenation with light therapy", Duration: 40, Price: 320},
		},
		Providers: []Provider{
			{ID: "prov-9-1", Name: "Dr. Andrei Constantin", Specialty: "Laser Treatments", Rating: 4.95},
			{ID: "prov-9-2", Name: "Dr. Claudia Stanescu", Specialty: "Injectable Treatments", Rating: 4.9},
		},
	},
}
