// Package fixtures seeds the in-memory store with named scenario data.
// Scenario selection (SEED_SCENARIO) is a development affordance only;
// the sqlstore never goes through here.
package fixtures

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
	"yogabook/internal/store"
)

// DemoPassword is the login password of every seeded user.
const DemoPassword = "yogabook-demo"

// Names lists the known scenarios.
func Names() []string { return []string{"default", "empty", "full-house"} }

// Apply seeds st with the named scenario.
func Apply(st store.Store, scenario string) error {
	switch scenario {
	case "", "default":
		return seedDefault(st)
	case "empty":
		_, _, err := seedUsers(st)
		return err
	case "full-house":
		return seedFullHouse(st)
	default:
		return domain.ValidationError{Field: "scenario", Msg: fmt.Sprintf("unknown scenario %q", scenario)}
	}
}

func demoHash() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err) // static input, cannot fail
	}
	return string(hash)
}

func seedUsers(st store.Store) (teachers, students []models.User, err error) {
	hash := demoHash()

	seedTeachers := []models.User{
		{
			Email: "maya@yogabook.dev", Name: "Maya Lindqvist", Phone: "+49 170 1111111",
			Role: domain.RoleTeacher, PasswordHash: hash,
			Bio:         "Vinyasa and yin teacher, 500h RYT.",
			Specialties: []string{"vinyasa", "yin"},
			Website:     "https://maya.example",
		},
		{
			Email: "daniel@yogabook.dev", Name: "Daniel Okoye", Phone: "+49 170 2222222",
			Role: domain.RoleTeacher, PasswordHash: hash,
			Bio:         "Ashtanga, pranayama and beginner courses.",
			Specialties: []string{"ashtanga", "pranayama"},
		},
	}
	seedStudents := []models.User{
		{
			Email: "jo@yogabook.dev", Name: "Jo Brandt", Phone: "+49 171 3333333",
			Role: domain.RoleStudent, PasswordHash: hash,
			EmergencyContact: "Mika Brandt +49 171 4444444",
		},
		{
			Email: "sam@yogabook.dev", Name: "Sam Keller",
			Role: domain.RoleStudent, PasswordHash: hash,
			MedicalNotes: "Lower back injury (2023), avoid deep twists.",
		},
		{
			Email: "aylin@yogabook.dev", Name: "Aylin Demir",
			Role: domain.RoleStudent, PasswordHash: hash,
		},
	}

	for _, u := range seedTeachers {
		created, err := st.Users().Create(u)
		if err != nil {
			return nil, nil, err
		}
		teachers = append(teachers, created)
	}
	for _, u := range seedStudents {
		created, err := st.Users().Create(u)
		if err != nil {
			return nil, nil, err
		}
		students = append(students, created)
	}
	return teachers, students, nil
}

func seedDefault(st store.Store) error {
	teachers, students, err := seedUsers(st)
	if err != nil {
		return err
	}
	maya, daniel := teachers[0], teachers[1]
	jo, sam := students[0], students[1]

	today := time.Now()
	at := func(days int, hour int) time.Time {
		d := today.AddDate(0, 0, days)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.Local)
	}

	class, err := st.Classes().Create(models.Class{
		TeacherID: maya.ID, Title: "Morning Flow", Description: "All-levels vinyasa to start the day.",
		Date: at(2, 8), DurationMinutes: 60, Location: "Studio 1",
		Capacity: 12, BookedCount: 1, Price: 15, Currency: "EUR",
	})
	if err != nil {
		return err
	}
	if _, err := st.Classes().Create(models.Class{
		TeacherID: daniel.ID, Title: "Lunchtime Stretch", Date: at(3, 12),
		DurationMinutes: 45, Location: "Studio 2",
		Capacity: 8, Price: 12, Currency: "EUR",
	}); err != nil {
		return err
	}

	course, err := st.Courses().Create(models.Course{
		TeacherID: daniel.ID, Title: "Beginners Course",
		Description: "Six weeks of foundations, same slot every week.",
		StartDate:   at(7, 18), EndDate: at(7+5*7, 18),
		Weekday: at(7, 18).Weekday(), TimeOfDay: "18:00",
		Capacity: 10, EnrolledCount: 2, Price: 90, Currency: "EUR",
	})
	if err != nil {
		return err
	}
	for week := 0; week < 6; week++ {
		if _, err := st.Courses().CreateSession(models.CourseSession{
			CourseID: course.ID, Date: at(7+week*7, 18),
		}); err != nil {
			return err
		}
	}

	event, err := st.Events().Create(models.Event{
		TeacherID: maya.ID, Title: "Full Moon Flow", Category: "workshop",
		Date: at(10, 20), Location: "Rooftop",
		Capacity: 25, BookedCount: 3, Price: 22, Currency: "EUR",
	})
	if err != nil {
		return err
	}

	booking, err := st.Bookings().Create(models.Booking{
		StudentID: jo.ID, ItemID: class.ID, ItemType: models.ItemClass,
		Status: models.BookingConfirmed,
	})
	if err != nil {
		return err
	}
	if _, err := st.Bookings().Create(models.Booking{
		StudentID: sam.ID, ItemID: course.ID, ItemType: models.ItemCourse,
		Status: models.BookingPending,
	}); err != nil {
		return err
	}
	if _, err := st.Bookings().Create(models.Booking{
		StudentID: jo.ID, ItemID: event.ID, ItemType: models.ItemEvent,
		Status: models.BookingPending,
	}); err != nil {
		return err
	}

	paidAt := today.AddDate(0, 0, -1)
	payment, err := st.Payments().Create(models.Payment{
		BookingID: booking.ID, Amount: 15, Currency: "EUR",
		Status: models.PaymentPaid, PaidAt: &paidAt,
		TransactionID: "seed-txn-0001", PaymentMethod: "card",
	})
	if err != nil {
		return err
	}
	if _, err := st.Bookings().Update(booking.ID, models.BookingUpdate{PaymentID: &payment.ID}); err != nil {
		return err
	}
	// an overdue payment with no booking back-reference, as found in the wild
	if _, err := st.Payments().Create(models.Payment{
		BookingID: booking.ID, Amount: 22, Currency: "EUR",
		Status: models.PaymentOverdue,
	}); err != nil {
		return err
	}

	_, err = st.Attendance().Create(models.Attendance{
		BookingID: booking.ID, StudentID: jo.ID, ClassID: class.ID,
		Attended: true, Notes: "arrived late",
		RecordedAt: today.AddDate(0, 0, -7),
	})
	return err
}

// seedFullHouse has every offering at (or past) capacity, for exercising
// the unenforced-capacity edge in the UI.
func seedFullHouse(st store.Store) error {
	teachers, students, err := seedUsers(st)
	if err != nil {
		return err
	}
	maya := teachers[0]

	tomorrow := time.Now().AddDate(0, 0, 1)

	class, err := st.Classes().Create(models.Class{
		TeacherID: maya.ID, Title: "Packed Flow", Date: tomorrow,
		Capacity: 2, BookedCount: 2, Price: 15, Currency: "EUR",
	})
	if err != nil {
		return err
	}
	if _, err := st.Events().Create(models.Event{
		TeacherID: maya.ID, Title: "Oversold Workshop", Category: "workshop",
		Date: tomorrow, Capacity: 10, BookedCount: 12, Price: 30, Currency: "EUR",
	}); err != nil {
		return err
	}

	for _, student := range students[:2] {
		if _, err := st.Bookings().Create(models.Booking{
			StudentID: student.ID, ItemID: class.ID, ItemType: models.ItemClass,
			Status: models.BookingConfirmed,
		}); err != nil {
			return err
		}
	}
	return nil
}
