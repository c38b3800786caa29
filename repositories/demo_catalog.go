package repositories

import (
	"github.com/shopspring/decimal"

	"think-shop/models"
	"think-shop/utils"
)

func taka(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

// DemoProducts is the built-in catalog. In a real deployment this would be a
// remote fetch; the storefront ships with its demo product set instead.
func DemoProducts() ([]models.Product, error) {
	products := []models.Product{
		{
			ID:          1,
			Name:        "CAPCUT PRO (pc version)",
			Description: "Watermark ছাড়া Full HD/4K Export, আনলকড প্রিমিয়াম ফিচার, Smooth Slow Motion, এবং আরো অনেক কিছু!",
			Category:    models.CategorySoftware,
			Price:       taka(249),
			Image:       "product_images/CAPCUT PRO.png",
			IsFeatured:  true,
		},
		{
			ID:          4,
			Name:        "CANVA PRO (official)",
			Description: "আপনার ডিজাইনের মুক্ত জগতে প্রবেশ করুন! Watermark ছাড়া HD এক্সপোর্ট, হাজারো প্রিমিয়াম টেমপ্লেট, Background Remover, Magic Resize সহ অসাধারণ সব ফিচারে",
			Category:    models.CategorySubscription,
			Price:       taka(0),
			Image:       "product_images/CANVAPRO.png",
			IsFeatured:  true,
			Durations: []models.Duration{
				{Label: "6 MONTH", Price: taka(49)},
				{Label: "1 YEAR", Price: taka(99)},
				{Label: "3 YEARS", Price: taka(149)},
			},
		},
		{
			ID:          6,
			Name:        "CHAT-GPT (personal)",
			Description: "GPT-4o, 4.1, 4.5 সহ আনলিমিটেড প্রিমিয়াম ফিচার আগে এক্সেস দেখে নিন, তারপর পেমেন্ট!",
			Category:    models.CategorySubscription,
			Price:       taka(0),
			Image:       "product_images/Chatgpt1.png",
			IsFeatured:  true,
			Durations: []models.Duration{
				{Label: "1 MONTH", Price: taka(499)},
			},
		},
		{
			ID:          11,
			Name:        "WASENDER (official licensekey)",
			Description: "WhatsApp Marketing Software – আপনার বিক্রি বাড়ানোর সহজ সমাধান! দৈনিক ১২০০+ ইউজারকে ফ্রি মেসেজ সেন্ড, টার্গেটেড নাম্বার ও ইমেইল কালেক্ট।",
			Category:    models.CategorySoftware,
			Price:       taka(0),
			Image:       "product_images/WASENDERR.png",
			IsFeatured:  true,
			Durations: []models.Duration{
				{Label: "6 MONTH", Price: taka(699)},
				{Label: "1 YEAR", Price: taka(999)},
				{Label: "LIFETIME", Price: taka(1999)},
			},
		},
		{
			ID:          15,
			Name:        "VIDEO EDITING MASTERCLASS",
			Description: "Premiere Pro ও CapCut দিয়ে প্রফেশনাল ভিডিও এডিটিং শিখুন – ব্যাসিক থেকে অ্যাডভান্সড, বাংলা টিউটোরিয়ালে।",
			Category:    models.CategoryCourse,
			Price:       taka(899),
			Image:       "product_images/videoediting.png",
			IsFeatured:  true,
		},
		{
			ID:          17,
			Name:        "FREELANCING GUIDE 2025 (bangla)",
			Description: "Fiverr ও Upwork-এ ক্যারিয়ার শুরু করার কমপ্লিট গাইড – প্রোফাইল সেটআপ থেকে প্রথম অর্ডার পর্যন্ত।",
			Category:    models.CategoryEbook,
			Price:       taka(149),
			Image:       "product_images/freelancingguide.png",
			IsFeatured:  false,
		},
		{
			ID:          21,
			Name:        "WINDOWS 7 PRODUCT KEY",
			Description: "💻 Windows 7 লাইসেন্স কী – 100% জেনুইন ও আজীবনের এক্টিভেশন! Microsoft-এর অফিসিয়াল Activation Key, ইমেইলে ডেলিভারি।",
			Category:    models.CategorySoftware,
			Price:       taka(0),
			Image:       "product_images/windows7pro.png",
			Durations: []models.Duration{
				{Label: "Windows 7 Home Basic Key", Price: taka(299)},
				{Label: "Windows 7 Home Premium Key", Price: taka(349)},
				{Label: "Windows 7 Ultimate Key", Price: taka(299)},
				{Label: "Windows 7 Professional Key", Price: taka(349)},
			},
		},
		{
			ID:          22,
			Name:        "WINDOWS 8 PRODUCT KEY",
			Description: "💻 Windows 8 লাইসেন্স কী – 100% জেনুইন ও আজীবনের এক্টিভেশন! Microsoft-এর অফিসিয়াল Activation Key, ইমেইলে ডেলিভারি।",
			Category:    models.CategorySoftware,
			Price:       taka(0),
			Image:       "product_images/windows8pro.png",
			Durations: []models.Duration{
				{Label: "Windows 8 Professional Key", Price: taka(299)},
				{Label: "Windows 8.1 Professional Key", Price: taka(349)},
			},
		},
		{
			ID:          23,
			Name:        "WINDOWS 10 PRODUCT KEY",
			Description: "💻 Windows 10 লাইসেন্স কী – 100% জেনুইন ও আজীবনের এক্টিভেশন! Microsoft-এর অফিসিয়াল Activation Key, ইমেইলে ডেলিভারি।",
			Category:    models.CategorySoftware,
			Price:       taka(0),
			Image:       "product_images/windows10pro.png",
			Durations: []models.Duration{
				{Label: "Windows 10 Pro Key", Price: taka(399)},
				{Label: "Windows 10 Home Key", Price: taka(399)},
				{Label: "Windows 10 Enterprise Key", Price: taka(449)},
			},
		},
		{
			ID:          24,
			Name:        "WINDOWS 11 PRODUCT KEY",
			Description: "💻 Windows 11 লাইসেন্স কী – 100% জেনুইন ও আজীবনের এক্টিভেশন! Microsoft-এর অফিসিয়াল Activation Key, ইমেইলে ডেলিভারি।",
			Category:    models.CategorySoftware,
			Price:       taka(0),
			Image:       "product_images/WINDOWS11pro.png",
			Durations: []models.Duration{
				{Label: "Windows 11 Pro Key", Price: taka(499)},
				{Label: "Windows 11 Home Key", Price: taka(499)},
				{Label: "Windows 11 Enterprise Key", Price: taka(549)},
			},
		},
	}

	for i := range products {
		products[i].Slug = utils.CreateSlug(products[i].Name)
	}
	return products, nil
}
