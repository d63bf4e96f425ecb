package boot

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ttu/src/models"
	"ttu/src/utils"
)

func str(s string) *string { return &s }

func onDate(s string) models.DateOnly {
	d, err := models.ParseDateOnly(s)
	if err != nil {
		log.Fatalf("Bad fixture date %q: %s\n", s, err.Error())
	}
	return d
}

func atTime(s string) models.TimeOfDay {
	t, err := models.ParseTimeOfDay(s)
	if err != nil {
		log.Fatalf("Bad fixture time %q: %s\n", s, err.Error())
	}
	return t
}

// SeedDb wipes the three tables and loads the Kenyan fixture set:
// 10 venues, 15 events, 6 tickets.
func SeedDb(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("true").Delete(&models.Ticket{}).Error; err != nil {
			return err
		}
		if err := tx.Where("true").Delete(&models.Event{}).Error; err != nil {
			return err
		}
		if err := tx.Where("true").Delete(&models.Venue{}).Error; err != nil {
			return err
		}

		venues := []models.Venue{
			{
				Name:     "Kasarani Stadium (Moi International Sports Centre)",
				Address:  "Thika Road, Kasarani",
				City:     "Nairobi",
				Capacity: 60000,
				ImageURL: str("https://images.unsplash.com/photo-1577223625816-7546f13df25d?w=800"),
			},
			{
				Name:     "Nyayo National Stadium",
				Address:  "Mombasa Road, near CBD",
				City:     "Nairobi",
				Capacity: 30000,
				ImageURL: str("https://images.unsplash.com/photo-1459865264687-595d652de67e?w=800"),
			},
			{
				Name:     "Nairobi City Stadium",
				Address:  "Jogoo Road",
				City:     "Nairobi",
				Capacity: 15000,
				ImageURL: str("https://images.unsplash.com/photo-1522778119026-d647f0596c20?w=800"),
			},
			{
				Name:     "KICC (Kenyatta International Convention Centre)",
				Address:  "City Square, Harambee Avenue",
				City:     "Nairobi",
				Capacity: 4000,
				ImageURL: str("https://images.unsplash.com/photo-1587825140708-dfaf72ae4b04?w=800"),
			},
			{
				Name:     "Uhuru Gardens National Monument",
				Address:  "Langata Road",
				City:     "Nairobi",
				Capacity: 50000,
				ImageURL: str("https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800"),
			},
			{
				Name:     "The Carnivore",
				Address:  "Langata Road, near Wilson Airport",
				City:     "Nairobi",
				Capacity: 10000,
				ImageURL: str("https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=800"),
			},
			{
				Name:     "Kasarani Indoor Arena",
				Address:  "Moi International Sports Centre, Thika Road",
				City:     "Nairobi",
				Capacity: 5000,
				ImageURL: str("https://images.unsplash.com/photo-1504450758481-7338eba7524a?w=800"),
			},
			{
				Name:     "Two Rivers Mall Arena",
				Address:  "Limuru Road, Runda",
				City:     "Nairobi",
				Capacity: 3000,
				ImageURL: str("https://images.unsplash.com/photo-1567521464027-f127ff144326?w=800"),
			},
			{
				Name:     "Kipchoge Keino Stadium",
				Address:  "Eldoret Town",
				City:     "Eldoret",
				Capacity: 10000,
				ImageURL: str("https://images.unsplash.com/photo-1587280501635-68a0e82cd5ff?w=800"),
			},
			{
				Name:     "Mombasa Municipal Stadium",
				Address:  "Mombasa Island",
				City:     "Mombasa",
				Capacity: 12000,
				ImageURL: str("https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=800"),
			},
		}
		if err := tx.Create(&venues).Error; err != nil {
			return err
		}
		log.Printf("Created %d venues\n", len(venues))

		events := []models.Event{
			{
				VenueID:     venues[1].ID,
				Title:       "Mashemeji Derby: Gor Mahia vs AFC Leopards",
				Description: str("Kenya's biggest football rivalry! The historic Mashemeji Derby between arch-rivals Gor Mahia (K'Ogalo) and AFC Leopards (Ingwe)."),
				Category:    str("Sports"),
				EventDate:   onDate("2025-03-15"),
				EventTime:   atTime("15:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=800"),
			},
			{
				VenueID:     venues[0].ID,
				Title:       "Harambee Stars vs Uganda Cranes - AFCON Qualifier",
				Description: str("Harambee Stars face East African rivals Uganda Cranes in a crucial Africa Cup of Nations qualifier at Kasarani Stadium."),
				Category:    str("Sports"),
				EventDate:   onDate("2025-06-08"),
				EventTime:   atTime("16:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1431324155629-1a6deb1dec8d?w=800"),
			},
			{
				VenueID:     venues[2].ID,
				Title:       "FKF Premier League: Tusker FC vs Kakamega Homeboyz",
				Description: str("Top-flight Kenyan Premier League action as defending champions Tusker FC host Kakamega Homeboyz at Nairobi City Stadium."),
				Category:    str("Sports"),
				EventDate:   onDate("2025-04-20"),
				EventTime:   atTime("15:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1508098682722-e99c43a406b2?w=800"),
			},
			{
				VenueID:     venues[0].ID,
				Title:       "Safari Sevens 2025",
				Description: str("East Africa's premier rugby sevens tournament returns to Kasarani! Kenya Shujaa and international teams battle it out over two days."),
				Category:    str("Sports"),
				EventDate:   onDate("2025-10-18"),
				EventTime:   atTime("09:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1544131750-fa7e77d3ae59?w=800"),
			},
			{
				VenueID:     venues[6].ID,
				Title:       "KBF Basketball Finals",
				Description: str("The Kenya Basketball Federation Premier League Finals at the Kasarani Indoor Arena."),
				Category:    str("Sports"),
				EventDate:   onDate("2025-05-24"),
				EventTime:   atTime("14:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1546519638-68e109498ffc?w=800"),
			},
			{
				VenueID:     venues[8].ID,
				Title:       "Kip Keino Classic 2025",
				Description: str("World Athletics Continental Tour Gold meeting in the home of champions, named after legendary Olympian Kipchoge Keino."),
				Category:    str("Sports"),
				EventDate:   onDate("2025-05-10"),
				EventTime:   atTime("14:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1552674605-db6ffd4facb5?w=800"),
			},
			{
				VenueID:     venues[4].ID,
				Title:       "Sol Fest 2025 - Sauti Sol Reunion",
				Description: str("Kenya's legendary afro-pop band Sauti Sol reunites for an epic concert at Uhuru Gardens featuring Bien, Savara, Chimano and Polycarp."),
				Category:    str("Concert"),
				EventDate:   onDate("2025-12-21"),
				EventTime:   atTime("18:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800"),
			},
			{
				VenueID:     venues[5].ID,
				Title:       "Nyashinski Live at Carnivore",
				Description: str("Kenyan hip-hop legend Nyashinski performs 'Mungu Pekee', 'Finyo', 'Malaika' and more at the iconic Carnivore."),
				Category:    str("Concert"),
				EventDate:   onDate("2025-08-16"),
				EventTime:   atTime("19:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800"),
			},
			{
				VenueID:     venues[5].ID,
				Title:       "Bensoul & Nviiri Live",
				Description: str("Sol Generation artists Bensoul and Nviiri the Storyteller bring Kenyan soul and R&B to the Carnivore stage."),
				Category:    str("Concert"),
				EventDate:   onDate("2025-07-12"),
				EventTime:   atTime("20:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1501612780327-45045538702b?w=800"),
			},
			{
				VenueID:     venues[0].ID,
				Title:       "Davido Live in Nairobi",
				Description: str("Nigerian Afrobeats superstar Davido brings his electrifying performance to Kasarani Stadium."),
				Category:    str("Concert"),
				EventDate:   onDate("2025-08-30"),
				EventTime:   atTime("18:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?w=800"),
			},
			{
				VenueID:     venues[3].ID,
				Title:       "Churchill Show Live Recording",
				Description: str("Churchill hosts a star-studded lineup of Kenya's finest comedians for a live TV recording at KICC."),
				Category:    str("Comedy"),
				EventDate:   onDate("2025-05-03"),
				EventTime:   atTime("19:30"),
				ImageURL:    str("https://images.unsplash.com/photo-1527224538127-2104bb71c51b?w=800"),
			},
			{
				VenueID:     venues[7].ID,
				Title:       "Eric Omondi: Night of a Thousand Laughs",
				Description: str("Kenya's king of comedy Eric Omondi brings his hilarious stand-up special to Two Rivers."),
				Category:    str("Comedy"),
				EventDate:   onDate("2025-04-05"),
				EventTime:   atTime("20:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1585699324551-f6c309eedeca?w=800"),
			},
			{
				VenueID:     venues[4].ID,
				Title:       "Koroga Festival 2025",
				Description: str("Three days of live performances from top African artists, gourmet food and art installations at Uhuru Gardens."),
				Category:    str("Festival"),
				EventDate:   onDate("2025-09-13"),
				EventTime:   atTime("12:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1533174072545-7a4b6ad7a6c3?w=800"),
			},
			{
				VenueID:     venues[3].ID,
				Title:       "Nairobi Fashion Week 2025",
				Description: str("Kenya's premier fashion event showcasing the best of African design at the iconic KICC."),
				Category:    str("Festival"),
				EventDate:   onDate("2025-11-08"),
				EventTime:   atTime("17:00"),
				ImageURL:    str("https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800"),
			},
			{
				VenueID:   venues[9].ID,
				Title:     "Coastal Derby: Bandari FC vs Shabana",
				Category:  str("Sports"),
				EventDate: onDate("2025-06-21"),
				EventTime: atTime("15:00"),
			},
		}
		if err := tx.Create(&events).Error; err != nil {
			return err
		}
		log.Printf("Created %d events\n", len(events))

		tickets := []models.Ticket{
			{
				EventID:    events[0].ID,
				BuyerName:  "James Ochieng",
				BuyerEmail: "james.ochieng@email.co.ke",
				TicketType: models.TICKET_VIP,
				Price:      decimal.NewFromFloat(2500.00),
			},
			{
				EventID:    events[0].ID,
				BuyerName:  "Mary Wanjiku",
				BuyerEmail: "mary.wanjiku@email.co.ke",
				TicketType: models.TICKET_STANDARD,
				Price:      decimal.NewFromFloat(500.00),
			},
			{
				EventID:    events[6].ID,
				BuyerName:  "Brian Mwangi",
				BuyerEmail: "brian.mwangi@email.co.ke",
				TicketType: models.TICKET_VIP,
				Price:      decimal.NewFromFloat(10000.00),
			},
			{
				EventID:    events[6].ID,
				BuyerName:  "Grace Akinyi",
				BuyerEmail: "grace.akinyi@email.co.ke",
				TicketType: models.TICKET_STANDARD,
				Price:      decimal.NewFromFloat(2000.00),
			},
			{
				EventID:    events[10].ID,
				BuyerName:  "Peter Kamau",
				BuyerEmail: "peter.kamau@email.co.ke",
				TicketType: models.TICKET_STANDARD,
				Price:      decimal.NewFromFloat(1500.00),
			},
			{
				EventID:    events[9].ID,
				BuyerName:  "Faith Njeri",
				BuyerEmail: "faith.njeri@email.co.ke",
				TicketType: models.TICKET_PREMIUM,
				Price:      decimal.NewFromFloat(8000.00),
			},
		}
		for i := range tickets {
			tickets[i].ConfirmationCode = utils.GenerateConfirmationCode()
			tickets[i].Status = models.TICKET_CONFIRMED
		}
		if err := tx.Create(&tickets).Error; err != nil {
			return err
		}
		log.Printf("Created %d tickets\n", len(tickets))

		return nil
	})
}
