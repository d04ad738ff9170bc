// Package seed populates the database with the site's starter content and,
// optionally, randomized demo data for development.
package seed

import (
	"context"
	"log/slog"

	"folio/internal/middleware"
	"folio/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configuration for the seeder.
type Options struct {
	// Demo enables randomized filler content on top of the fixed starter set.
	Demo        bool
	NumProjects int
	NumPosts    int
	NumMessages int
}

var starterSettings = []models.SiteSetting{
	{Key: "instagram_url", Value: "https://instagram.com/daniel_cyber"},
	{Key: "linkedin_url", Value: "https://linkedin.com/in/daniel-cyber"},
	{Key: "email", Value: "daniel@example.com"},
	{Key: "github_url", Value: "https://github.com/daniel-cyber"},
}

var starterProjects = []models.Project{
	{
		Title:         "Network Scanner",
		TitleHe:       "סורק רשתות",
		Description:   "Automated network scanning tool with vulnerability detection",
		DescriptionHe: "כלי סריקת רשתות אוטומטי עם זיהוי פגיעויות",
		Technologies:  models.StringList{"Python", "Scapy", "Nmap"},
		GithubURL:     "https://github.com/daniel/network-scanner",
		Featured:      "true",
	},
	{
		Title:         "Log Analyzer",
		TitleHe:       "מנתח לוגים",
		Description:   "Smart log analysis system with anomaly detection",
		DescriptionHe: "מערכת ניתוח לוגים חכמה עם זיהוי חריגות",
		Technologies:  models.StringList{"Python", "ELK Stack", "ML"},
		GithubURL:     "https://github.com/daniel/log-analyzer",
		Featured:      "true",
	},
	{
		Title:         "Phishing Detector",
		TitleHe:       "מזהה פישינג",
		Description:   "Browser extension to detect phishing websites",
		DescriptionHe: "תוסף דפדפן לזיהוי אתרי פישינג",
		Technologies:  models.StringList{"JavaScript", "NLP", "Chrome API"},
		GithubURL:     "https://github.com/daniel/phishing-detector",
		Featured:      "true",
	},
	{
		Title:         "Password Auditor",
		TitleHe:       "בודק סיסמאות",
		Description:   "Password strength checker and policy validator",
		DescriptionHe: "כלי לבדיקת חוזק סיסמאות ואימות מדיניות",
		Technologies:  models.StringList{"Python", "Hashcat", "REST API"},
		GithubURL:     "https://github.com/daniel/password-auditor",
		Featured:      "false",
	},
}

var starterBlogPosts = []models.BlogPost{
	{
		Title:     "Getting Started with Penetration Testing",
		TitleHe:   "מדריך למתחילים בבדיקות חדירות",
		Slug:      "getting-started-pentesting",
		Excerpt:   "Learn the basics of penetration testing and how to get started",
		ExcerptHe: "למדו את הבסיס של בדיקות חדירות וכיצד להתחיל",
		Content:   "Penetration testing is a crucial skill in cybersecurity...",
		ContentHe: `בדיקות חדירות הן אחד התחומים החשובים ביותר באבטחת מידע.

בדיקות חדירות (Penetration Testing) הן תהליך של בדיקת מערכות מחשוב לזיהוי פרצות אבטחה.

## מה צריך לדעת?

1. רשתות - הבנה של פרוטוקולי TCP/IP
2. לינוקס - עבודה בסביבת Kali Linux
3. כלים - Nmap, Burp Suite, Metasploit
4. סקריפטים - Python ו-Bash

## איך להתחיל?

מומלץ להתחיל עם פלטפורמות לימוד כמו:
- TryHackMe
- HackTheBox
- OverTheWire

בהצלחה!`,
		Published: "true",
	},
	{
		Title:     "OSINT Techniques for Security Researchers",
		TitleHe:   "טכניקות OSINT לחוקרי אבטחה",
		Slug:      "osint-techniques",
		Excerpt:   "Discover open source intelligence gathering methods",
		ExcerptHe: "גלו שיטות לאיסוף מידע ממקורות פתוחים",
		Content:   "OSINT is the collection and analysis of information...",
		ContentHe: `OSINT (Open Source Intelligence) הוא תחום העוסק באיסוף וניתוח מידע ממקורות פתוחים.

## מהו OSINT?

OSINT מאפשר לנו לאסוף מידע על יעדים מבלי לחדור למערכות שלהם.

## כלים מומלצים

- Maltego - לניתוח קשרים
- Shodan - לסריקת מכשירים מחוברים
- TheHarvester - לאיסוף מידע על דומיינים
- Google Dorks - חיפוש מתקדם בגוגל

## שימושים לגיטימיים

1. בדיקת חשיפה ארגונית
2. חקירות אבטחה
3. איתור דליפות מידע
4. מודיעין עסקי

זכרו: השתמשו בכלים אלו באחריות ובהתאם לחוק!`,
		Published: "true",
	},
}

// Run seeds the starter content. Settings are inserted with do-nothing
// conflict handling so re-running never overwrites values an operator has
// changed. Projects and posts are skipped when their table already has rows.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	log := middleware.Logger

	// Insert copies so BeforeCreate never mutates the package-level fixtures.
	for _, s := range starterSettings {
		setting := s
		err := db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoNothing: true,
			}).
			Create(&setting).Error
		if err != nil {
			return err
		}
	}

	var projectCount int64
	if err := db.WithContext(ctx).Model(&models.Project{}).Count(&projectCount).Error; err != nil {
		return err
	}
	if projectCount == 0 {
		for _, p := range starterProjects {
			project := p
			if err := db.WithContext(ctx).Create(&project).Error; err != nil {
				return err
			}
		}
		log.InfoContext(ctx, "seeded starter projects", slog.Int("count", len(starterProjects)))
	}

	var postCount int64
	if err := db.WithContext(ctx).Model(&models.BlogPost{}).Count(&postCount).Error; err != nil {
		return err
	}
	if postCount == 0 {
		for _, p := range starterBlogPosts {
			post := p
			if err := db.WithContext(ctx).Create(&post).Error; err != nil {
				return err
			}
		}
		log.InfoContext(ctx, "seeded starter blog posts", slog.Int("count", len(starterBlogPosts)))
	}

	if opts.Demo {
		if err := NewFactory(db).SeedDemo(ctx, opts); err != nil {
			return err
		}
	}

	log.InfoContext(ctx, "seeding complete")
	return nil
}
