package controllers

import (
	"github.com/TuanAnh19122003/motoparts-storefront/utils"
	"github.com/gin-gonic/gin"
)

// Static about-page content. Nothing here comes from the API.
var aboutContent = gin.H{
	"hero": gin.H{
		"title":    "MotoParts Store",
		"subtitle": "Genuine Honda motorcycle parts with guaranteed quality, fair prices and trusted service.",
		"cta":      gin.H{"label": "Browse products", "path": "/" + utils.APIVersion + "/products"},
	},
	"features": []gin.H{
		{"icon": "tool", "title": "Genuine parts", "description": "Imported and distributed officially by Honda."},
		{"icon": "safety", "title": "Guaranteed quality", "description": "Durability and safety for your motorcycle."},
		{"icon": "dollar", "title": "Competitive prices", "description": "Always the best price for our customers."},
	},
	"openingHours": gin.H{
		"weekdays": "Mon - Sat: 08:00 - 20:00",
		"sunday":   "Sunday: 08:00 - 18:00",
		"notice":   "Please call before visiting",
	},
	"contact": gin.H{
		"address": "456 Honda Street, District 5, Ho Chi Minh City",
		"phone":   "0909 123 456",
	},
	"mapEmbedURL": "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3919.123456789!2d106.681!3d10.762!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x123456789%3A0xabcdef!2sHonda%20Shop!5e0!3m2!1sen!2s!4v1718800000000!5m2!1sen!2s",
}

// GetAbout serves the static about page content
func GetAbout(c *gin.Context) {
	utils.Success(c, "About page loaded successfully", aboutContent)
}
