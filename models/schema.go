package models

// Shape descriptors served by GET /schema for the CMS viewer. These are
// maintained by hand alongside the structs above; the viewer only needs
// property names, types and required lists, not a full JSON Schema dialect.

func productSchema() map[string]interface{} {
	return map[string]interface{}{
		"title": "Product",
		"type":  "object",
		"properties": map[string]interface{}{
			"name":        map[string]interface{}{"type": "string", "description": "Product name"},
			"brand":       map[string]interface{}{"type": "string", "description": "Brand name"},
			"description": map[string]interface{}{"type": "string", "description": "Product description"},
			"price":       map[string]interface{}{"type": "number", "minimum": 0, "description": "Price in dollars"},
			"image_url":   map[string]interface{}{"type": "string", "description": "Primary image URL"},
			"category":    map[string]interface{}{"type": "string", "description": "Product category"},
			"in_stock":    map[string]interface{}{"type": "boolean", "default": true, "description": "Whether product is in stock"},
			"features":    map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}, "default": []string{}, "description": "Key features list"},
		},
		"required": []string{"name", "brand", "price"},
	}
}

func userSchema() map[string]interface{} {
	return map[string]interface{}{
		"title": "User",
		"type":  "object",
		"properties": map[string]interface{}{
			"name":      map[string]interface{}{"type": "string", "description": "Full name"},
			"email":     map[string]interface{}{"type": "string", "description": "Email address"},
			"address":   map[string]interface{}{"type": "string", "description": "Address"},
			"age":       map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 120, "description": "Age in years"},
			"is_active": map[string]interface{}{"type": "boolean", "default": true, "description": "Whether user is active"},
		},
		"required": []string{"name", "email", "address"},
	}
}

func siteSettingsSchema() map[string]interface{} {
	return map[string]interface{}{
		"title": "SiteSettings",
		"type":  "object",
		"properties": map[string]interface{}{
			"hero_title":    map[string]interface{}{"type": "string", "default": "Premium White Goods", "description": "Homepage hero title"},
			"hero_subtitle": map[string]interface{}{"type": "string", "default": "Reliable appliances for every home.", "description": "Homepage subtitle"},
			"contact_email": map[string]interface{}{"type": "string", "format": "email", "description": "Where contact form messages go"},
			"phone":         map[string]interface{}{"type": "string", "description": "Contact phone number"},
			"address":       map[string]interface{}{"type": "string", "description": "Business address"},
		},
		"required": []string{},
	}
}

// SchemaDescriptors returns the shape descriptors keyed by collection name.
func SchemaDescriptors() map[string]interface{} {
	return map[string]interface{}{
		"product":      productSchema(),
		"user":         userSchema(),
		"sitesettings": siteSettingsSchema(),
	}
}
