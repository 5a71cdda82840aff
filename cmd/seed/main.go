package main

import (
	"context"
	"flag"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aftab6363/Spare-Parts-Depot/internal/config"
	"github.com/aftab6363/Spare-Parts-Depot/internal/db"
	"github.com/aftab6363/Spare-Parts-Depot/internal/model"
	"github.com/aftab6363/Spare-Parts-Depot/internal/repository"
)

// seedPassword is shared by all seeded users.
const seedPassword = "password123"

type seedUser struct {
	Name  string
	Email string
	Role  string
}

var seedUsers = []seedUser{
	{Name: "Admin User", Email: "admin@example.com", Role: model.RoleAdmin},
	{Name: "John Doe", Email: "john@example.com", Role: model.RoleUser},
	{Name: "Jane Smith", Email: "jane@example.com", Role: model.RoleUser},
}

type seedPart struct {
	Name         string
	Image        string
	Brand        string
	Category     string
	Description  string
	ModelNumber  string
	Price        string
	CountInStock int
}

var seedParts = []seedPart{
	// Engine
	{"V8 Engine Block", "/images/engine.png", "Ford Performance", "Engine", "Cast iron block for high performance builds.", "ENG-V8-001", "1299.99", 5},
	{"Turbocharger Kit", "/images/turbo.png", "Garrett", "Engine", "Complete turbo kit for 2.0L engines.", "TRB-K-55", "850.00", 8},
	{"High-Flow Air Filter", "/images/oil_filter.png", "K&N", "Engine", "Performance air filter for better airflow.", "AF-HF-99", "54.99", 100},
	{"Timing Belt Kit", "/images/engine.png", "Gates", "Engine", "Complete timing belt replacement kit.", "TB-K-01", "120.50", 25},
	{"Oil Cooler Kit", "/images/oil_filter.png", "Mishimoto", "Engine", "Keep oil temps low during track use.", "OC-K-10", "280.00", 7},

	// Brakes
	{"Ceramic Brake Pads (Front)", "/images/brakes.png", "Brembo", "Brakes", "Low dust ceramic pads for street use.", "BP-F-001", "89.99", 50},
	{"Drilled Rotors (Pair)", "/images/brakes.png", "StopTech", "Brakes", "Cross-drilled rotors for better cooling.", "RT-D-55", "199.99", 15},
	{"Brake Caliper (Red)", "/images/brakes.png", "Wilwood", "Brakes", "4-piston performance caliper.", "BC-R-04", "349.50", 10},

	// Suspension
	{"Coilover Kit", "/images/suspension.png", "KW Suspension", "Suspension", "Adjustable height and damping coilovers.", "CO-V3-00", "1450.00", 4},
	{"Sway Bar Link", "/images/suspension.png", "Moog", "Suspension", "Heavy duty sway bar end link.", "SB-L-99", "24.99", 60},

	// Electrical
	{"AGM Car Battery", "/images/battery.png", "Optima", "Electrical", "High cold cranking amps battery.", "BAT-AGM-34", "219.00", 20},
	{"Alternator 120A", "/images/engine.png", "Denso", "Electrical", "High output alternator.", "ALT-120-X", "180.00", 12},
	{"LED Headlight Bulbs", "/images/lights.png", "Philips", "Electrical", "6000K Cool White LED bulbs.", "LED-H4-00", "45.99", 80},

	// Body
	{"Carbon Fiber Hood", "/images/interior.png", "Seibon", "Body", "Lightweight carbon fiber hood.", "CF-HD-99", "899.00", 3},
	{"Front Bumper Lip", "/images/interior.png", "APR", "Body", "Aerodynamic front splitter.", "LIP-F-01", "350.00", 8},
	{"Roof Rack", "/images/interior.png", "Thule", "Body", "Cargo carrier for roof.", "RR-TH-01", "450.00", 10},

	// Transmission
	{"Clutch Kit Stage 2", "/images/engine.png", "Exedy", "Transmission", "Performance clutch for street/strip.", "CL-ST2-00", "420.00", 15},
	{"Short Throw Shifter", "/images/interior.png", "Hurst", "Transmission", "Reduces shift throw by 40%.", "STS-01-X", "150.00", 25},

	// Wheels
	{"18\" Alloy Wheel", "/images/wheel.png", "Enkei", "Wheels", "Lightweight racing wheel.", "WH-RPF1", "325.00", 40},
	{"Performance Tire 245/40", "/images/wheel.png", "Michelin", "Wheels", "Super Sport summer tire.", "T-PSS-245", "250.00", 30},

	// Ignition
	{"Spark Plug Wires", "/images/sparkplugs.png", "NGK", "Ignition", "Blue performance wires.", "SPW-009", "40.00", 50},

	// Interior
	{"Floor Mats All-Weather", "/images/interior.png", "WeatherTech", "Interior", "Laser measured floor protection.", "FM-AW-99", "180.00", 25},
	{"Racing Seat", "/images/interior.png", "Sparco", "Interior", "FIA approved bucket seat.", "RS-FIA-01", "700.00", 6},
}

func main() {
	destroy := flag.Bool("d", false, "destroy all seeded data instead of importing")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Part{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	if *destroy {
		destroyData(gormDB)
		return
	}

	importData(gormDB)
}

func importData(gormDB *gorm.DB) {
	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	partRepo := repository.NewPartRepository(gormDB)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	var admin *model.User
	usersCreated := 0
	for _, su := range seedUsers {
		existing, err := userRepo.FindByEmail(ctx, su.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", su.Email, err)
		}
		if existing == nil {
			existing = &model.User{
				Name:         su.Name,
				Email:        su.Email,
				PasswordHash: string(hashedPassword),
				Role:         su.Role,
			}
			if err := userRepo.Create(ctx, existing); err != nil {
				log.Fatalf("Failed to create user %s: %v", su.Email, err)
			}
			usersCreated++
		}
		if su.Role == model.RoleAdmin && admin == nil {
			admin = existing
		}
	}
	if admin == nil {
		log.Fatal("No admin user available for part ownership")
	}

	// Parts are keyed by model number so re-running the seeder is a no-op.
	partsCreated := 0
	for _, sp := range seedParts {
		var count int64
		if err := gormDB.WithContext(ctx).Model(&model.Part{}).
			Where("model_number = ?", sp.ModelNumber).Count(&count).Error; err != nil {
			log.Fatalf("Failed to check part %s: %v", sp.ModelNumber, err)
		}
		if count > 0 {
			continue
		}

		part := &model.Part{
			UserID:       admin.ID,
			Name:         sp.Name,
			Brand:        sp.Brand,
			Category:     sp.Category,
			ModelNumber:  sp.ModelNumber,
			Description:  sp.Description,
			Price:        decimal.RequireFromString(sp.Price),
			CountInStock: sp.CountInStock,
			Image:        sp.Image,
		}
		if err := partRepo.Create(ctx, part); err != nil {
			log.Fatalf("Failed to create part %s: %v", sp.ModelNumber, err)
		}
		partsCreated++
	}

	log.Println("Data Imported!")
	log.Printf("  - Users created: %d", usersCreated)
	log.Printf("  - Parts created: %d", partsCreated)
}

func destroyData(gormDB *gorm.DB) {
	// Unscoped to clear soft-deleted rows too; order matters for FKs.
	for _, m := range []interface{}{
		&model.OrderItem{},
		&model.Order{},
		&model.Part{},
		&model.User{},
	} {
		if err := gormDB.Unscoped().Where("1 = 1").Delete(m).Error; err != nil {
			log.Fatalf("Failed to destroy data: %v", err)
		}
	}
	log.Println("Data Destroyed!")
}
