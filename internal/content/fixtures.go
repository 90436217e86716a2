package content

import (
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/lib/pq"
)

// Демонстрационные данные для сидов. Каждый вызов возвращает новые значения,
// хранилище присваивает им id.

func ptr[V any](v V) *V { return &v }

func certificationFixtures() []*domain.Certification {
	return []*domain.Certification{
		{
			Title:        "AWS Certified Solutions Architect",
			Issuer:       "Amazon Web Services",
			Date:         "2024",
			CredentialID: "AWS-SCA-2024",
			IconType:     "cloud",
			Color:        "from-orange-500 to-yellow-500",
			GlowColor:    "rgba(249, 115, 22, 0.4)",
			Skills:       pq.StringArray{"Cloud Architecture", "Security", "Scalability"},
			URL:          ptr("#"),
		},
		{
			Title:        "Professional Cloud Developer",
			Issuer:       "Google Cloud",
			Date:         "2023",
			CredentialID: "GCP-PCD-2023",
			IconType:     "code",
			Color:        "from-blue-500 to-cyan-400",
			GlowColor:    "rgba(59, 130, 246, 0.4)",
			Skills:       pq.StringArray{"GCP", "Kubernetes", "DevOps"},
			URL:          ptr("#"),
		},
		{
			Title:        "Meta Front-End Professional",
			Issuer:       "Meta",
			Date:         "2023",
			CredentialID: "META-FE-2023",
			IconType:     "smartphone",
			Color:        "from-blue-600 to-indigo-600",
			GlowColor:    "rgba(37, 99, 235, 0.4)",
			Skills:       pq.StringArray{"React", "JavaScript", "UX/UI"},
			URL:          ptr("#"),
		},
		{
			Title:        "Certified Kubernetes Administrator",
			Issuer:       "CNCF",
			Date:         "2023",
			CredentialID: "CKA-2023",
			IconType:     "database",
			Color:        "from-blue-400 to-blue-300",
			GlowColor:    "rgba(96, 165, 250, 0.4)",
			Skills:       pq.StringArray{"Kubernetes", "Container Orchestration", "Linux"},
			URL:          ptr("#"),
		},
	}
}

func experienceFixtures() []*domain.Experience {
	return []*domain.Experience{
		{
			Title:        "President",
			Organization: "Google Developer Student Club",
			Type:         domain.ExperienceStudentOrg,
			Location:     "University Campus",
			StartDate:    "2024-08",
			IsCurrent:    true,
			Description:  "Leading the university's premier technology community, organizing workshops, hackathons, and tech talks to empower students with cutting-edge development skills.",
			Responsibilities: pq.StringArray{
				"Lead a team of 15+ core members in organizing technical events",
				"Coordinate with Google Developer Relations for official GDSC programs",
				"Host weekly study jams covering Android, Web, and Cloud technologies",
				"Mentor students on their journey to becoming skilled developers",
			},
			Achievements: pq.StringArray{
				"Grew community from 50 to 300+ active members",
				"Organized 3 successful hackathons with 500+ participants",
				"Launched campus-wide coding bootcamp reaching 200 students",
			},
			Logo:         ptr("https://cdn.simpleicons.org/google"),
			Color:        ptr("#4285F4"),
			Technologies: pq.StringArray{"React", "Firebase", "Flutter", "TensorFlow", "Google Cloud"},
		},
		{
			Title:        "Software Engineer Intern",
			Organization: "Tech Startup Inc.",
			Type:         domain.ExperienceInternship,
			Location:     "Remote",
			StartDate:    "2024-06",
			EndDate:      ptr("2024-08"),
			Description:  "Contributed to the development of a customer-facing web application serving 10,000+ daily users, focusing on frontend optimization and new feature development.",
			Responsibilities: pq.StringArray{
				"Developed responsive React components following design specifications",
				"Implemented REST API integrations for real-time data synchronization",
				"Conducted code reviews and participated in agile sprint ceremonies",
				"Wrote unit tests achieving 85% code coverage",
			},
			Achievements: pq.StringArray{
				"Reduced page load time by 40% through performance optimizations",
				"Shipped 5 major features to production ahead of schedule",
				"Received return offer for full-time position",
			},
			Logo:         ptr("https://cdn.simpleicons.org/react"),
			Color:        ptr("#61DAFB"),
			Technologies: pq.StringArray{"React", "TypeScript", "Node.js", "PostgreSQL", "AWS"},
		},
		{
			Title:        "Web Developer (OJT)",
			Organization: "Government Agency",
			Type:         domain.ExperienceOJT,
			Location:     "City Hall",
			StartDate:    "2024-01",
			EndDate:      ptr("2024-05"),
			Description:  "Completed On-the-Job Training developing internal web systems and automating administrative processes for improved government service delivery.",
			Responsibilities: pq.StringArray{
				"Built internal dashboard for tracking citizen requests and complaints",
				"Automated report generation reducing manual work by 70%",
				"Created documentation and training materials for staff",
				"Maintained and updated legacy PHP systems",
			},
			Achievements: pq.StringArray{
				"Streamlined document processing workflow saving 20 hours weekly",
				"Developed automated backup system for critical databases",
				"Received commendation letter from department head",
			},
			Logo:         ptr("https://cdn.simpleicons.org/laravel"),
			Color:        ptr("#FF2D20"),
			Technologies: pq.StringArray{"Laravel", "PHP", "MySQL", "Bootstrap", "jQuery"},
		},
		{
			Title:        "Technical Lead",
			Organization: "University ACM Chapter",
			Type:         domain.ExperienceStudentOrg,
			Location:     "University Campus",
			StartDate:    "2023-09",
			EndDate:      ptr("2024-06"),
			Description:  "Led the technical team in organizing programming competitions, coding workshops, and algorithm training sessions for computer science students.",
			Responsibilities: pq.StringArray{
				"Designed and prepared problems for monthly programming contests",
				"Conducted algorithm and data structure training sessions",
				"Managed the organization's technical infrastructure and websites",
				"Coordinated with ACM-ICPC regional for competition participation",
			},
			Achievements: pq.StringArray{
				"Trained team that placed Top 10 in Regional Programming Contest",
				"Increased workshop attendance by 150%",
				"Established mentorship program pairing seniors with freshmen",
			},
			Logo:         ptr("https://cdn.simpleicons.org/acm"),
			Color:        ptr("#0085CA"),
			Technologies: pq.StringArray{"C++", "Python", "Java", "Competitive Programming"},
		},
		{
			Title:        "Freelance Developer",
			Organization: "Self-Employed",
			Type:         domain.ExperienceFreelance,
			Location:     "Remote",
			StartDate:    "2023-01",
			IsCurrent:    true,
			Description:  "Providing web development and design services to small businesses and startups, delivering custom solutions that drive growth and engagement.",
			Responsibilities: pq.StringArray{
				"Consult with clients to understand requirements and propose solutions",
				"Design and develop responsive websites and web applications",
				"Implement SEO best practices and analytics integration",
				"Provide ongoing maintenance and support for deployed projects",
			},
			Achievements: pq.StringArray{
				"Completed 10+ projects with 100% client satisfaction",
				"Built e-commerce platform generating $50K+ monthly revenue for client",
				"Maintained 5-star rating across freelance platforms",
			},
			Logo:         ptr("https://cdn.simpleicons.org/upwork"),
			Color:        ptr("#6FDA44"),
			Technologies: pq.StringArray{"React", "Next.js", "Tailwind CSS", "Supabase", "Vercel"},
		},
	}
}

func hackathonFixtures() []*domain.Hackathon {
	return []*domain.Hackathon{
		{
			Title:       "Smart Recycle",
			Organizer:   "Google Solution Challenge 2024",
			Date:        "2024-03-15",
			Description: "An AI-powered waste classification app that uses computer vision to identify recyclable materials and provides proper disposal instructions. Our team developed a mobile-first solution using TensorFlow Lite for on-device inference, ensuring privacy and offline functionality. The app achieved 94% accuracy across 15 waste categories and won the regional finals.",
			Thumbnail:   "https://images.unsplash.com/photo-1532996122724-e3c354a0b15b?w=600&h=800&fit=crop",
			Gallery: pq.StringArray{
				"https://images.unsplash.com/photo-1611284446314-60a58ac0deb9?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1526951521990-620dc14c214b?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1542601906990-b4d3fb778b09?w=800&h=600&fit=crop",
			},
			Tags: pq.StringArray{"React Native", "TensorFlow", "Firebase", "Python"},
			Links: domain.HackathonLinks{
				Github: ptr("https://github.com/example/smart-recycle"),
				Demo:   ptr("https://smart-recycle.app"),
				Social: ptr("https://linkedin.com/posts/smart-recycle"),
			},
		},
		{
			Title:       "EduConnect",
			Organizer:   "MLH HackMIT 2023",
			Date:        "2023-09-20",
			Description: "A peer-to-peer learning platform connecting students with tutors in real-time. Features include HD video calls with WebRTC, collaborative whiteboard with real-time sync, AI-powered study recommendations, and comprehensive progress tracking. Won 2nd place among 200+ competing teams.",
			Thumbnail:   "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=600&h=800&fit=crop",
			Gallery: pq.StringArray{
				"https://images.unsplash.com/photo-1531482615713-2afd69097998?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1524178232363-1fb2b075b655?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1517245386807-bb43f82c33c4?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1509062522246-3755977927d7?w=800&h=600&fit=crop",
			},
			Tags: pq.StringArray{"React", "WebRTC", "Node.js", "MongoDB", "Socket.io"},
			Links: domain.HackathonLinks{
				Github: ptr("https://github.com/example/educonnect"),
				Demo:   ptr("https://educonnect.vercel.app"),
			},
		},
		{
			Title:       "HealthTrack IoT",
			Organizer:   "IEEE Hackathon 2023",
			Date:        "2023-05-10",
			Description: "A wearable health monitoring system using Arduino sensors to track vital signs including heart rate, blood oxygen, and temperature. Data syncs to a React app for real-time monitoring, trend analysis, and emergency alerts to caregivers. Features predictive analytics for early health issue detection.",
			Thumbnail:   "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=600&h=800&fit=crop",
			Gallery: pq.StringArray{
				"https://images.unsplash.com/photo-1559757175-5700dde675bc?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1504868584819-f8e8b4b6d7e3?w=800&h=600&fit=crop",
			},
			Tags: pq.StringArray{"Arduino", "IoT", "React", "Flask", "MQTT"},
			Links: domain.HackathonLinks{
				Github: ptr("https://github.com/example/healthtrack"),
				Social: ptr("https://facebook.com/healthtrack"),
			},
		},
		{
			Title:       "Carbon Footprint Tracker",
			Organizer:   "Climate Hack Global 2024",
			Date:        "2024-01-25",
			Description: "A comprehensive carbon footprint tracking app that helps users monitor their environmental impact through daily activities, transportation, and consumption habits. Features gamification, community challenges, and AI-powered suggestions for reducing emissions. Integrates with smart home devices.",
			Thumbnail:   "https://images.unsplash.com/photo-1569163139599-0f4517e36f51?w=600&h=800&fit=crop",
			Gallery: pq.StringArray{
				"https://images.unsplash.com/photo-1473341304170-971dccb5ac1e?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1497436072909-60f360e1d4b1?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1518173946687-a4c036bc1413?w=800&h=600&fit=crop",
			},
			Tags: pq.StringArray{"Vue.js", "Python", "PostgreSQL", "Chart.js", "OpenAI"},
			Links: domain.HackathonLinks{
				Github: ptr("https://github.com/example/carbon-tracker"),
				Demo:   ptr("https://carbonfootprint.app"),
			},
		},
		{
			Title:       "SafeRoute",
			Organizer:   "Women in Tech Hackathon 2023",
			Date:        "2023-11-08",
			Description: "A personal safety navigation app that provides the safest walking routes based on crime data, street lighting, and crowd density. Features real-time location sharing with trusted contacts, SOS alerts, and community-reported hazards. Built for urban commuters, especially those traveling at night.",
			Thumbnail:   "https://images.unsplash.com/photo-1519501025264-65ba15a82390?w=600&h=800&fit=crop",
			Gallery: pq.StringArray{
				"https://images.unsplash.com/photo-1480714378408-67cf0d13bc1b?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1514565131-fce0801e5785?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=800&h=600&fit=crop",
			},
			Tags: pq.StringArray{"React Native", "Google Maps", "Node.js", "MongoDB"},
			Links: domain.HackathonLinks{
				Github: ptr("https://github.com/example/saferoute"),
				Demo:   ptr("https://saferoute.app"),
				Social: ptr("https://twitter.com/saferoute"),
			},
		},
		{
			Title:       "FarmSense AI",
			Organizer:   "AgriTech Innovation Challenge 2024",
			Date:        "2024-02-20",
			Description: "An intelligent crop monitoring system using drone imagery and machine learning to detect plant diseases, pest infestations, and irrigation needs. Provides actionable insights to farmers via a mobile app, helping optimize crop yields and reduce pesticide use by 40%.",
			Thumbnail:   "https://images.unsplash.com/photo-1574943320219-553eb213f72d?w=600&h=800&fit=crop",
			Gallery: pq.StringArray{
				"https://images.unsplash.com/photo-1625246333195-78d9c38ad449?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1586771107445-d3ca888129ff?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1560493676-04071c5f467b?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1530836369250-ef72a3f5cda8?w=800&h=600&fit=crop",
			},
			Tags: pq.StringArray{"Python", "TensorFlow", "React", "AWS", "Drones"},
			Links: domain.HackathonLinks{
				Github: ptr("https://github.com/example/farmsense"),
				Demo:   ptr("https://farmsense.ai"),
			},
		},
	}
}

// projectFixtures: createdAt идёт шагом в 1000 секунд назад от now,
// так что порядок списка совпадает с порядком фикстур.
func projectFixtures(now time.Time) []*domain.Project {
	projects := []*domain.Project{
		{
			Title:       "E-Commerce Platform",
			Category:    "Full Stack Development",
			Description: "A comprehensive e-commerce solution with real-time inventory management, payment processing, and admin dashboard. Built with modern web technologies for optimal performance and user experience.",
			Thumbnail:   "https://images.unsplash.com/photo-1557821552-17105176677c?w=800",
			Tags:        pq.StringArray{"React", "Node.js", "MongoDB", "Stripe", "Redux"},
			Date:        "2025-12-15",
			Links: domain.ProjectLinks{
				Github: ptr("https://github.com"),
				Demo:   ptr("https://example.com"),
				Live:   ptr("https://example.com"),
			},
		},
		{
			Title:       "Social Media Dashboard",
			Category:    "Frontend Development",
			Description: "Real-time analytics dashboard for social media management with interactive charts, post scheduling, and engagement metrics. Features dark mode and responsive design for all devices.",
			Thumbnail:   "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800",
			Tags:        pq.StringArray{"Vue.js", "Chart.js", "Tailwind CSS", "Firebase"},
			Date:        "2025-11-20",
			Links: domain.ProjectLinks{
				Github: ptr("https://github.com"),
				Demo:   ptr("https://example.com"),
			},
		},
		{
			Title:       "Task Management App",
			Category:    "Full Stack Development",
			Description: "Collaborative task management tool with drag-and-drop interface, real-time updates, team collaboration features, and project timeline visualization.",
			Thumbnail:   "https://images.unsplash.com/photo-1540350394557-8d14678e7f91?w=800",
			Tags:        pq.StringArray{"Next.js", "TypeScript", "PostgreSQL", "Prisma"},
			Date:        "2025-10-05",
			Links: domain.ProjectLinks{
				Github: ptr("https://github.com"),
				Live:   ptr("https://example.com"),
			},
		},
		{
			Title:       "Weather Forecast App",
			Category:    "Mobile Development",
			Description: "Cross-platform weather application with detailed forecasts, interactive maps, weather alerts, and location-based notifications. Clean UI with smooth animations.",
			Thumbnail:   "https://images.unsplash.com/photo-1592210454359-9043f067919b?w=800",
			Tags:        pq.StringArray{"React Native", "Expo", "Weather API", "Maps"},
			Date:        "2025-09-12",
			Links: domain.ProjectLinks{
				Github: ptr("https://github.com"),
				Demo:   ptr("https://example.com"),
			},
		},
		{
			Title:       "Portfolio CMS",
			Category:    "Backend Development",
			Description: "Headless CMS for portfolio websites with REST API, content management, media library, user authentication, and role-based access control.",
			Thumbnail:   "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=800",
			Tags:        pq.StringArray{"Express", "Node.js", "MySQL", "JWT", "REST API"},
			Date:        "2025-08-28",
			Links: domain.ProjectLinks{
				Github: ptr("https://github.com"),
			},
		},
		{
			Title:       "Fitness Tracker",
			Category:    "Mobile Development",
			Description: "Personal fitness tracking app with workout logging, progress charts, meal planning, calorie counter, and social features to connect with friends.",
			Thumbnail:   "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=800",
			Tags:        pq.StringArray{"Flutter", "Dart", "Firebase", "Health Kit"},
			Date:        "2025-07-15",
			Links: domain.ProjectLinks{
				Github: ptr("https://github.com"),
				Demo:   ptr("https://example.com"),
			},
		},
	}
	for k, p := range projects {
		p.CreatedAt = now.Add(-time.Duration(k+1) * 1000 * time.Second)
	}
	return projects
}

func skillFixtures() []*domain.Skill {
	skill := func(name, category, icon string) *domain.Skill {
		return &domain.Skill{Name: name, Category: category, Img: "https://cdn.simpleicons.org/" + icon}
	}
	return []*domain.Skill{
		skill("HTML", domain.SkillFrontend, "html5"),
		skill("CSS", domain.SkillFrontend, "css3"),
		skill("JavaScript", domain.SkillFrontend, "javascript"),

		skill("Flask", domain.SkillFrameworks, "flask"),
		skill("React", domain.SkillFrameworks, "react"),
		skill("Tailwind CSS", domain.SkillFrameworks, "tailwindcss"),

		skill("Python", domain.SkillBackend, "python"),
		skill("Java", domain.SkillBackend, "openjdk"),
		skill("SQL", domain.SkillBackend, "mysql"),
		skill("SQLite", domain.SkillBackend, "sqlite"),

		skill("Git", domain.SkillTools, "git"),
		skill("Github", domain.SkillTools, "github"),
		skill("Figma", domain.SkillTools, "figma"),
		skill("VS Code", domain.SkillTools, "visualstudiocode"),
	}
}

func heroFixtures() []*domain.HeroContent {
	return []*domain.HeroContent{{
		Title:       "Marwin John Gonzales",
		Subtitle:    "Full Stack Developer & Tech Enthusiast",
		Description: "Building exceptional digital experiences with modern technologies. Passionate about creating innovative solutions that make a difference.",
		Roles:       pq.StringArray{"Full Stack Developer", "Web Developer", "Mobile Developer"},
	}}
}

func aboutFixtures() []*domain.AboutContent {
	return []*domain.AboutContent{{
		Title:    "About Me",
		Subtitle: "Developer, organizer and lifelong learner",
		Bio: pq.StringArray{
			"I build web and mobile applications end to end, from database design to polished interfaces.",
			"Outside of client work I lead student developer communities and take part in hackathons.",
		},
		Stats: domain.AboutStats{
			YearsExperience:   3,
			ProjectsCompleted: 6,
			Technologies:      14,
			Certifications:    4,
		},
	}}
}

func socialLinkFixtures() []*domain.SocialLink {
	return []*domain.SocialLink{
		{Platform: "linkedin", URL: "https://www.linkedin.com/in/marwin-john-gonzales-a38509322/", Label: "LinkedIn", Color: "#0077b5", Order: 1, IsActive: true},
		{Platform: "github", URL: "https://github.com", Label: "GitHub", Color: "#333", Order: 2, IsActive: true},
		{Platform: "facebook", URL: "https://www.facebook.com/marwin.john.gonzales.2024/", Label: "Facebook", Color: "#1877f2", Order: 3, IsActive: true},
		{Platform: "instagram", URL: "https://www.instagram.com/maruwinu/", Label: "Instagram", Color: "#e4405f", Order: 4, IsActive: true},
		{Platform: "email", URL: "mailto:marwinjohngonzales@gmail.com", Label: "Email", Color: "#ea4335", Order: 5, IsActive: true},
	}
}
