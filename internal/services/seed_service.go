package services

import (
	"context"

	"github.com/renukapahade/sprouts-coach-connect/internal/models"
	"go.uber.org/zap"
)

type coachSeeder interface {
	Create(ctx context.Context, coach *models.Coach) error
	DeleteAll(ctx context.Context) error
}

type userSeeder interface {
	Create(ctx context.Context, user *models.User) error
	DeleteAll(ctx context.Context) error
}

// SeedService clears and repopulates the coach and user tables with sample
// data. Destructive; the route wiring keeps it out of production.
type SeedService struct {
	coachRepo coachSeeder
	userRepo  userSeeder
	log       *zap.Logger
}

func NewSeedService(coachRepo coachSeeder, userRepo userSeeder, log *zap.Logger) *SeedService {
	return &SeedService{coachRepo: coachRepo, userRepo: userRepo, log: log}
}

type SeedResult struct {
	Coaches int `json:"coaches"`
	Users   int `json:"users"`
}

func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	if err := s.coachRepo.DeleteAll(ctx); err != nil {
		return nil, err
	}
	if err := s.userRepo.DeleteAll(ctx); err != nil {
		return nil, err
	}

	coaches := sampleCoaches()
	for i := range coaches {
		if err := s.coachRepo.Create(ctx, &coaches[i]); err != nil {
			return nil, err
		}
	}

	users := sampleUsers()
	for i := range users {
		if err := s.userRepo.Create(ctx, &users[i]); err != nil {
			return nil, err
		}
	}

	s.log.Info("database seeded",
		zap.Int("coaches", len(coaches)),
		zap.Int("users", len(users)),
	)
	return &SeedResult{Coaches: len(coaches), Users: len(users)}, nil
}

func weekdayAvailability(startTime, endTime string, days ...string) []models.AvailabilityWindow {
	windows := make([]models.AvailabilityWindow, 0, len(days))
	for _, day := range days {
		windows = append(windows, models.AvailabilityWindow{
			Day:       day,
			StartTime: startTime,
			EndTime:   endTime,
		})
	}
	return windows
}

func strPtr(s string) *string { return &s }

func sampleCoaches() []models.Coach {
	return []models.Coach{
		{
			Name:           "Priya Sharma",
			Email:          "priya.sharma@example.com",
			Phone:          "+91-9876543210",
			Specialization: "fitness",
			Bio:            "Certified personal trainer with 8 years of experience in strength training, weight loss, and functional fitness. I specialize in creating personalized workout plans that fit your lifestyle and help you achieve sustainable results.",
			Experience:     8,
			Location:       "Mumbai",
			Rating:         4.9,
			ReviewCount:    127,
			Image:          strPtr("https://images.pexels.com/photos/733872/pexels-photo-733872.jpeg"),
			Certifications: []string{"NASM-CPT", "ACSM-CPT", "Functional Movement Screen"},
			HourlyRate:     1500,
			MonthlySlots:   40,
			Availability:   weekdayAvailability("07:00", "12:00", "monday", "wednesday", "friday"),
			Packages: []models.Package{
				{
					ID:            "pkg_priya_1",
					Name:          "Fitness Transformation - 3 Month",
					Duration:      3,
					TotalSessions: 24,
					Price:         30000,
					Description:   "Complete fitness transformation program with personalized training and nutrition guidance",
					Features:      []string{"24 personal training sessions", "Custom workout plans", "Nutrition guidance", "Progress tracking", "WhatsApp support"},
				},
			},
		},
		{
			Name:           "Dr. Rajesh Kumar",
			Email:          "rajesh.kumar@example.com",
			Phone:          "+91-9876543211",
			Specialization: "nutrition",
			Bio:            "Licensed nutritionist and dietitian with 10 years of experience in sports nutrition, weight management, and therapeutic diets.",
			Experience:     10,
			Location:       "Delhi",
			Rating:         4.8,
			ReviewCount:    89,
			Image:          strPtr("https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg"),
			Certifications: []string{"RD", "CSSD", "PhD Nutritional Sciences"},
			HourlyRate:     2000,
			MonthlySlots:   30,
			Availability:   weekdayAvailability("10:00", "16:00", "tuesday", "thursday"),
			Packages: []models.Package{
				{
					ID:            "pkg_rajesh_1",
					Name:          "Nutrition Mastery - 3 Month",
					Duration:      3,
					TotalSessions: 12,
					Price:         20000,
					Description:   "Complete nutrition overhaul with personalized meal plans and lifestyle coaching",
					Features:      []string{"12 nutrition consultations", "Custom meal plans", "Recipe database", "Supplement guidance", "Email support"},
				},
			},
		},
		{
			Name:           "Kavya Reddy",
			Email:          "kavya.reddy@example.com",
			Phone:          "+91-9876543212",
			Specialization: "both",
			Bio:            "Holistic health coach combining fitness training and nutritional counseling with 6 years of experience.",
			Experience:     6,
			Location:       "Bangalore",
			Rating:         4.9,
			ReviewCount:    156,
			Image:          strPtr("https://images.pexels.com/photos/1065084/pexels-photo-1065084.jpeg"),
			Certifications: []string{"ACE-CPT", "Precision Nutrition Level 1", "Yoga Alliance RYT-200"},
			HourlyRate:     1800,
			MonthlySlots:   50,
			Availability:   weekdayAvailability("06:00", "11:00", "monday", "tuesday", "thursday", "saturday"),
			Packages: []models.Package{
				{
					ID:            "pkg_kavya_1",
					Name:          "Complete Wellness - 3 Month",
					Duration:      3,
					TotalSessions: 36,
					Price:         45000,
					Description:   "Integrated fitness and nutrition program for complete lifestyle transformation",
					Features:      []string{"36 combined sessions", "Fitness + nutrition coaching", "Meal prep guidance", "Lifestyle coaching", "Group support"},
				},
			},
		},
		{
			Name:           "Arjun Singh",
			Email:          "arjun.singh@example.com",
			Phone:          "+91-9876543213",
			Specialization: "fitness",
			Bio:            "Former professional athlete turned fitness coach with 12 years of experience. I specialize in athletic performance, sports conditioning, and injury prevention. My training methods are based on scientific principles and real-world application from my competitive sports background in cricket and athletics.",
			Experience:     12,
			Location:       "Chennai",
			Rating:         4.7,
			ReviewCount:    203,
			Image:          strPtr("https://images.pexels.com/photos/91227/pexels-photo-91227.jpeg"),
			Certifications: []string{"CSCS", "SAI Level 2", "FMS Level 2"},
			HourlyRate:     2200,
			MonthlySlots:   45,
			Availability:   weekdayAvailability("16:00", "21:00", "monday", "wednesday", "friday", "saturday"),
			Packages: []models.Package{
				{
					ID:            "pkg_arjun_1",
					Name:          "Athletic Performance - 3 Month",
					Duration:      3,
					TotalSessions: 30,
					Price:         35000,
					Description:   "High-performance training program for athletes and fitness enthusiasts",
					Features:      []string{"30 performance training sessions", "Sport-specific conditioning", "Injury prevention protocols", "Performance testing", "Recovery strategies"},
				},
				{
					ID:            "pkg_arjun_2",
					Name:          "Elite Athlete Program - 6 Month",
					Duration:      6,
					TotalSessions: 60,
					Price:         65000,
					Description:   "Comprehensive elite-level training program for serious athletes",
					Features:      []string{"60 elite training sessions", "Advanced periodization", "Biomechanical analysis", "Mental performance coaching", "Competition preparation"},
				},
			},
		},
		{
			Name:           "Dr. Meera Patel",
			Email:          "meera.patel@example.com",
			Phone:          "+91-9876543214",
			Specialization: "nutrition",
			Bio:            "Clinical nutritionist with 15 years of experience specializing in therapeutic nutrition, diabetes management, and weight loss. I have helped over 1000 clients achieve their health goals through evidence-based nutrition interventions and sustainable lifestyle modifications. Expert in Indian dietary patterns and Ayurvedic nutrition principles.",
			Experience:     15,
			Location:       "Pune",
			Rating:         4.9,
			ReviewCount:    312,
			Image:          strPtr("https://images.pexels.com/photos/1587009/pexels-photo-1587009.jpeg"),
			Certifications: []string{"MSc Clinical Nutrition", "CDE", "IAPEN Certified"},
			HourlyRate:     2500,
			MonthlySlots:   25,
			Availability:   weekdayAvailability("09:00", "14:30", "monday", "tuesday", "wednesday", "thursday", "friday"),
			Packages: []models.Package{
				{
					ID:            "pkg_meera_1",
					Name:          "Therapeutic Nutrition - 3 Month",
					Duration:      3,
					TotalSessions: 15,
					Price:         25000,
					Description:   "Medical nutrition therapy for various health conditions with Indian dietary focus",
					Features:      []string{"15 clinical consultations", "Therapeutic meal plans", "Medical nutrition therapy", "Lab monitoring", "Doctor coordination"},
				},
				{
					ID:            "pkg_meera_2",
					Name:          "Comprehensive Health - 6 Month",
					Duration:      6,
					TotalSessions: 30,
					Price:         45000,
					Description:   "Complete health transformation through clinical nutrition and Ayurvedic principles",
					Features:      []string{"30 detailed consultations", "Advanced therapeutic protocols", "Continuous health monitoring", "Supplement protocols", "Family nutrition guidance"},
				},
			},
		},
		{
			Name:           "Rohit Gupta",
			Email:          "rohit.gupta@example.com",
			Phone:          "+91-9876543215",
			Specialization: "fitness",
			Bio:            "CrossFit Level 3 trainer and former Indian Army fitness instructor with 9 years of experience in functional fitness and strength training. I help people build real-world strength and conditioning through varied, high-intensity workouts. My military background brings discipline and structure to every training session.",
			Experience:     9,
			Location:       "Kolkata",
			Rating:         4.6,
			ReviewCount:    78,
			Image:          strPtr("https://images.pexels.com/photos/834863/pexels-photo-834863.jpeg"),
			Certifications: []string{"CrossFit Level 3", "Army Physical Training Instructor", "Mobility Specialist"},
			HourlyRate:     1600,
			MonthlySlots:   60,
			Availability:   weekdayAvailability("05:30", "10:00", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"),
			Packages: []models.Package{
				{
					ID:            "pkg_rohit_1",
					Name:          "Military Fitness - 3 Month",
					Duration:      3,
					TotalSessions: 36,
					Price:         32000,
					Description:   "Military-style functional fitness training with discipline and structure",
					Features:      []string{"36 functional fitness sessions", "Military training techniques", "Endurance building", "Mental toughness training", "Nutrition basics"},
				},
				{
					ID:            "pkg_rohit_2",
					Name:          "Elite Conditioning - 6 Month",
					Duration:      6,
					TotalSessions: 72,
					Price:         60000,
					Description:   "Advanced conditioning program based on military training principles",
					Features:      []string{"72 intensive sessions", "Advanced conditioning", "Leadership mindset training", "Injury prevention", "Community support"},
				},
			},
		},
		{
			Name:           "Sneha Joshi",
			Email:          "sneha.joshi@example.com",
			Phone:          "+91-9876543216",
			Specialization: "both",
			Bio:            "Certified wellness coach and yoga instructor with 7 years of experience in holistic health approaches. I combine traditional Indian wellness practices with modern fitness and nutrition science. My programs focus on building healthy habits that align with Indian lifestyle and cultural preferences.",
			Experience:     7,
			Location:       "Hyderabad",
			Rating:         4.8,
			ReviewCount:    94,
			Image:          strPtr("https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg"),
			Certifications: []string{"ACSM-CPT", "Yoga Alliance RYT-500", "Ayurveda Wellness Counselor"},
			HourlyRate:     1700,
			MonthlySlots:   35,
			Availability:   weekdayAvailability("06:30", "12:00", "tuesday", "thursday", "saturday", "sunday"),
			Packages: []models.Package{
				{
					ID:            "pkg_sneha_1",
					Name:          "Holistic Wellness - 3 Month",
					Duration:      3,
					TotalSessions: 18,
					Price:         27000,
					Description:   "Traditional Indian wellness program combining yoga, fitness, and Ayurvedic nutrition",
					Features:      []string{"18 wellness coaching sessions", "Yoga and meditation", "Ayurvedic nutrition guidance", "Stress management techniques", "Pranayama sessions"},
				},
				{
					ID:            "pkg_sneha_2",
					Name:          "Complete Life Balance - 6 Month",
					Duration:      6,
					TotalSessions: 36,
					Price:         50000,
					Description:   "Comprehensive life balance program integrating ancient wisdom with modern wellness",
					Features:      []string{"36 comprehensive sessions", "Life coaching integration", "Habit formation strategies", "Work-life balance coaching", "Spiritual wellness guidance"},
				},
			},
		},
		{
			Name:           "Vikram Malhotra",
			Email:          "vikram.malhotra@example.com",
			Phone:          "+91-9876543217",
			Specialization: "nutrition",
			Bio:            "Plant-based nutrition specialist and former chef with 8 years of experience helping clients transition to healthier eating patterns. I specialize in Indian vegetarian and vegan nutrition, making healthy eating delicious and culturally appropriate for Indian families.",
			Experience:     8,
			Location:       "Goa",
			Rating:         4.7,
			ReviewCount:    65,
			Image:          strPtr("https://images.pexels.com/photos/1212984/pexels-photo-1212984.jpeg"),
			Certifications: []string{"Plant-Based Nutrition Certificate", "Culinary Nutrition Expert", "VLCC Certified"},
			HourlyRate:     1400,
			MonthlySlots:   20,
			Availability:   weekdayAvailability("11:00", "17:00", "wednesday", "friday", "sunday"),
			Packages: []models.Package{
				{
					ID:            "pkg_vikram_1",
					Name:          "Plant-Based Transition - 3 Month",
					Duration:      3,
					TotalSessions: 12,
					Price:         18000,
					Description:   "Smooth transition to plant-based nutrition with Indian cuisine focus",
					Features:      []string{"12 nutrition consultations", "Indian plant-based meal plans", "Recipe guides and cooking tips", "Family meal planning", "Shopping guidance"},
				},
				{
					ID:            "pkg_vikram_2",
					Name:          "Culinary Wellness - 6 Month",
					Duration:      6,
					TotalSessions: 24,
					Price:         35000,
					Description:   "Complete culinary wellness program combining nutrition with cooking skills",
					Features:      []string{"24 detailed consultations", "Cooking workshops", "Advanced meal planning", "Restaurant dining guidance", "Family nutrition education"},
				},
			},
		},
	}
}

func sampleUsers() []models.User {
	return []models.User{
		{Name: "Rahul Sharma", Email: "rahul.sharma@example.com", Phone: "+91-9876543220"},
		{Name: "Anita Singh", Email: "anita.singh@example.com", Phone: "+91-9876543221"},
		{Name: "Amit Patel", Email: "amit.patel@example.com", Phone: "+91-9876543222"},
	}
}
