package client

import "hospitality/entity"

// Site bundles the hook sets of every entity over one client and cache.
type Site struct {
	Menu     *Hooks[entity.MenuItem, MenuFilter]
	Bookings *Hooks[entity.Booking, BookingFilter]
	Contacts *Hooks[entity.Contact, ContactFilter]
	Services *Hooks[entity.Service, ActiveFilter]
	Offers   *Hooks[entity.Offer, OfferFilter]
	Gallery  *Hooks[entity.GalleryImage, GalleryFilter]
	Leaders  *Hooks[entity.Leader, NoFilter]
	Content  *ContentHooks
	Cache    *QueryCache
}

// NewSite reports mutation outcomes to notify, or to the standard logger
// when notify is nil.
func NewSite(c *Client, notify Notifier) *Site {
	if notify == nil {
		notify = LogNotifier{}
	}
	cache := NewQueryCache()
	uploads := c.Uploads()
	return &Site{
		Menu: NewHooks(c.Menu(), cache, notify, "menuItems", Messages{
			CreateSuccess: "Menu item created successfully", CreateFailure: "Failed to create menu item",
			UpdateSuccess: "Menu item updated successfully", UpdateFailure: "Failed to update menu item",
			DeleteSuccess: "Menu item deleted successfully", DeleteFailure: "Failed to delete menu item",
		}).WithImageUpload(uploads, "menu"),
		Bookings: NewHooks(c.Bookings(), cache, notify, "bookings", Messages{
			CreateSuccess: "Booking request submitted successfully", CreateFailure: "Failed to submit booking",
			UpdateSuccess: "Booking updated successfully", UpdateFailure: "Failed to update booking",
			DeleteSuccess: "Booking deleted successfully", DeleteFailure: "Failed to delete booking",
		}),
		Contacts: NewHooks(c.Contacts(), cache, notify, "contacts", Messages{
			CreateSuccess: "Message sent successfully", CreateFailure: "Failed to send message",
			UpdateSuccess: "Contact updated successfully", UpdateFailure: "Failed to update contact",
			DeleteSuccess: "Contact deleted successfully", DeleteFailure: "Failed to delete contact",
		}),
		Services: NewHooks(c.Services(), cache, notify, "services", Messages{
			CreateSuccess: "Service created successfully", CreateFailure: "Failed to create service",
			UpdateSuccess: "Service updated successfully", UpdateFailure: "Failed to update service",
			DeleteSuccess: "Service deleted successfully", DeleteFailure: "Failed to delete service",
		}),
		Offers: NewHooks(c.Offers(), cache, notify, "offers", Messages{
			CreateSuccess: "Offer created successfully", CreateFailure: "Failed to create offer",
			UpdateSuccess: "Offer updated successfully", UpdateFailure: "Failed to update offer",
			DeleteSuccess: "Offer deleted successfully", DeleteFailure: "Failed to delete offer",
		}),
		Gallery: NewHooks(c.Gallery(), cache, notify, "gallery", Messages{
			CreateSuccess: "Image uploaded successfully", CreateFailure: "Failed to upload image",
			UpdateSuccess: "Image updated successfully", UpdateFailure: "Failed to update image",
			DeleteSuccess: "Image deleted successfully", DeleteFailure: "Failed to delete image",
		}).WithImageUpload(uploads, "gallery"),
		Leaders: NewHooks(c.Leaders(), cache, notify, "leaders", Messages{
			CreateSuccess: "Leader added successfully", CreateFailure: "Failed to add leader",
			UpdateSuccess: "Leader updated successfully", UpdateFailure: "Failed to update leader",
			DeleteSuccess: "Leader deleted successfully", DeleteFailure: "Failed to delete leader",
		}).WithImageUpload(uploads, "leaders"),
		Content: NewContentHooks(c.Content(), cache, notify),
		Cache:   cache,
	}
}
