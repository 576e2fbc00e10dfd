package models

// SampleApps is the built-in gallery seed used on a cold client start, when
// no persisted app list exists yet. Media URLs are external, so the warm
// start validation pass leaves them alone as long as they stay reachable.
func SampleApps() []AppRecord {
	return []AppRecord{
		{
			ID:          "1",
			Name:        "TaskMaster Pro",
			Developer:   "Productivity Labs",
			Description: "Advanced task management and productivity app with AI-powered scheduling",
			IconURL:     "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=100&h=100&fit=crop",
			ScreenshotURLs: []string{
				"https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=200&h=400&fit=crop",
				"https://images.unsplash.com/photo-1551650975-87deedd944c3?w=200&h=400&fit=crop",
			},
			Store:      GooglePlay,
			Status:     StatusPublished,
			Rating:     4.7,
			Downloads:  "100K+",
			Views:      2341,
			Likes:      156,
			UploadDate: "2024-01-15",
			Tags:       []string{"productivity", "task", "AI"},
			StoreURL:   "https://play.google.com/store/apps/details?id=com.example.taskmaster",
			Version:    "2.1.0",
			Size:       "45MB",
			Category:   "Productivity",
		},
		{
			ID:          "2",
			Name:        "Fitness Tracker Plus",
			Developer:   "HealthTech Inc",
			Description: "Complete fitness tracking solution with workout plans and nutrition guides",
			IconURL:     "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=100&h=100&fit=crop",
			ScreenshotURLs: []string{
				"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=200&h=400&fit=crop",
			},
			Store:      AppleStore,
			Status:     StatusPublished,
			Rating:     4.5,
			Downloads:  "50K+",
			Views:      1892,
			Likes:      89,
			UploadDate: "2024-01-12",
			Tags:       []string{"fitness", "health", "workout"},
			StoreURL:   "https://apps.apple.com/app/fitness-tracker-plus/id123456789",
			Version:    "1.8.3",
			Size:       "78MB",
			Category:   "Health & Fitness",
		},
		{
			ID:          "3",
			Name:        "Recipe Explorer",
			Developer:   "Culinary Studios",
			Description: "Discover amazing recipes from around the world with step-by-step cooking guides",
			IconURL:     "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=100&h=100&fit=crop",
			ScreenshotURLs: []string{
				"https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=200&h=400&fit=crop",
			},
			Store:      GooglePlay,
			Status:     StatusInReview,
			Rating:     4.3,
			Downloads:  "25K+",
			Views:      1456,
			Likes:      72,
			UploadDate: "2024-01-10",
			Tags:       []string{"food", "recipe", "cooking"},
			Version:    "1.2.1",
			Size:       "32MB",
			Category:   "Food & Drink",
		},
		{
			ID:          "4",
			Name:        "Meditation Space",
			Developer:   "Mindful Apps",
			Description: "Find your inner peace with guided meditations and relaxation techniques",
			IconURL:     "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=100&h=100&fit=crop",
			ScreenshotURLs: []string{
				"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=200&h=400&fit=crop",
			},
			Store:      AppleStore,
			Status:     StatusDevelopment,
			Rating:     4.8,
			Downloads:  "75K+",
			Views:      3241,
			Likes:      234,
			UploadDate: "2024-01-08",
			Tags:       []string{"meditation", "wellness", "mindfulness"},
			Version:    "3.0.0-beta",
			Size:       "28MB",
			Category:   "Health & Fitness",
		},
		{
			ID:          "5",
			Name:        "Photo Editor Pro",
			Developer:   "Creative Tools Co",
			Description: "Professional photo editing with advanced filters and AI enhancement features",
			IconURL:     "https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?w=100&h=100&fit=crop",
			ScreenshotURLs: []string{
				"https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?w=200&h=400&fit=crop",
			},
			Store:      GooglePlay,
			Status:     StatusPublished,
			Rating:     4.6,
			Downloads:  "200K+",
			Views:      4567,
			Likes:      301,
			UploadDate: "2024-01-05",
			Tags:       []string{"photo", "editing", "creativity"},
			StoreURL:   "https://play.google.com/store/apps/details?id=com.example.photoeditor",
			Version:    "4.2.1",
			Size:       "120MB",
			Category:   "Photography",
		},
		{
			ID:          "6",
			Name:        "Language Learning Hub",
			Developer:   "EduTech Solutions",
			Description: "Learn new languages with interactive lessons and real-time conversation practice",
			IconURL:     "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?w=100&h=100&fit=crop",
			ScreenshotURLs: []string{
				"https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?w=200&h=400&fit=crop",
			},
			Store:      AppleStore,
			Status:     StatusPublished,
			Rating:     4.4,
			Downloads:  "150K+",
			Views:      2876,
			Likes:      187,
			UploadDate: "2024-01-03",
			Tags:       []string{"education", "language", "learning"},
			StoreURL:   "https://apps.apple.com/app/language-learning-hub/id987654321",
			Version:    "2.5.0",
			Size:       "95MB",
			Category:   "Education",
		},
	}
}
