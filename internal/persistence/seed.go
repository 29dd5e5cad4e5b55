package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
)

// SeedDepartments inserts the bundled department directory, skipping rows that
// already exist so repeated startups are safe.
func SeedDepartments(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping department seeding")
		return nil
	}

	const query = `
        INSERT INTO departments (city, issue_type, name, contact_email, contact_phone, address, website, working_hours, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,TRUE)
        ON CONFLICT DO NOTHING`

	inserted := 0
	for _, dept := range seedDepartments {
		cmd, err := pool.Exec(ctx, query,
			dept.City,
			dept.IssueType,
			dept.Name,
			dept.ContactEmail,
			dept.ContactPhone,
			dept.Address,
			dept.Website,
			dept.WorkingHours,
		)
		if err != nil {
			return err
		}
		inserted += int(cmd.RowsAffected())
	}

	logger.Info("department directory seeded",
		zap.Int("total", len(seedDepartments)),
		zap.Int("inserted", inserted))
	return nil
}

var seedDepartments = []domain.Department{
	{
		City:         "Mumbai",
		IssueType:    domain.IssueTypeWater,
		Name:         "Municipal Water Department - Mumbai",
		ContactEmail: "water.complaints@mumbai.gov.in",
		ContactPhone: "+91-22-2266-8899",
		Address:      "Hydraulic Engineer's Office, 2nd Floor, Municipal Building, Fort, Mumbai - 400001",
		Website:      "https://portal.mcgm.gov.in",
		WorkingHours: "9:00 AM - 6:00 PM (Mon-Fri)",
	},
	{
		City:         "Mumbai",
		IssueType:    domain.IssueTypeElectricity,
		Name:         "Mumbai Electric Department - BEST",
		ContactEmail: "electricity@bestundertaking.com",
		ContactPhone: "+91-22-2266-7788",
		Address:      "BEST House, Colaba, Mumbai - 400005",
		Website:      "https://www.bestundertaking.com",
		WorkingHours: "24/7 Emergency Services",
	},
	{
		City:         "Mumbai",
		IssueType:    domain.IssueTypeRoad,
		Name:         "Public Works Department - Mumbai",
		ContactEmail: "roads@mumbai.gov.in",
		ContactPhone: "+91-22-2266-6677",
		Address:      "PWD Office, Worli, Mumbai - 400018",
		Website:      "https://portal.mcgm.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Mumbai",
		IssueType:    domain.IssueTypeSanitation,
		Name:         "Solid Waste Management Department - Mumbai",
		ContactEmail: "sanitation@mumbai.gov.in",
		ContactPhone: "+91-22-2266-5566",
		Address:      "SWM Office, Dadar, Mumbai - 400014",
		Website:      "https://portal.mcgm.gov.in",
		WorkingHours: "24/7 Services",
	},
	{
		City:         "Mumbai",
		IssueType:    domain.IssueTypeStreetLights,
		Name:         "Street Lighting Department - Mumbai",
		ContactEmail: "streetlights@mumbai.gov.in",
		ContactPhone: "+91-22-2266-4455",
		Address:      "Electrical Department, BMC Building, Mumbai - 400001",
		Website:      "https://portal.mcgm.gov.in",
		WorkingHours: "9:00 AM - 6:00 PM (Mon-Fri)",
	},
	{
		City:         "Mumbai",
		IssueType:    domain.IssueTypeGarbageCollection,
		Name:         "Waste Management Department - Mumbai",
		ContactEmail: "waste@mumbai.gov.in",
		ContactPhone: "+91-22-2266-3344",
		Address:      "Waste Management Office, Bandra, Mumbai - 400050",
		Website:      "https://portal.mcgm.gov.in",
		WorkingHours: "6:00 AM - 10:00 PM (Daily)",
	},
	{
		City:         "Mumbai",
		IssueType:    domain.IssueTypePublicTransport,
		Name:         "BEST Transport Department",
		ContactEmail: "transport@bestundertaking.com",
		ContactPhone: "+91-22-2266-2233",
		Address:      "BEST Transport Division, Mumbai - 400005",
		Website:      "https://www.bestundertaking.com",
		WorkingHours: "24/7 Services",
	},
	{
		City:         "Mumbai",
		IssueType:    domain.IssueTypeParks,
		Name:         "Parks and Gardens Department - Mumbai",
		ContactEmail: "parks@mumbai.gov.in",
		ContactPhone: "+91-22-2266-1122",
		Address:      "Garden Department, Shivaji Park, Mumbai - 400016",
		Website:      "https://portal.mcgm.gov.in",
		WorkingHours: "6:00 AM - 6:00 PM (Daily)",
	},
	{
		City:         "Mumbai",
		IssueType:    domain.IssueTypeNoisePollution,
		Name:         "Pollution Control Department - Mumbai",
		ContactEmail: "pollution@mumbai.gov.in",
		ContactPhone: "+91-22-2266-0011",
		Address:      "Environment Department, BMC, Mumbai - 400001",
		Website:      "https://portal.mcgm.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Mumbai",
		IssueType:    domain.IssueTypeOther,
		Name:         "General Municipal Office - Mumbai",
		ContactEmail: "general@mumbai.gov.in",
		ContactPhone: "+91-22-2266-0000",
		Address:      "Municipal Commissioner Office, Mumbai - 400001",
		Website:      "https://portal.mcgm.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Delhi",
		IssueType:    domain.IssueTypeWater,
		Name:         "Delhi Jal Board",
		ContactEmail: "complaints@delhijalboard.delhi.gov.in",
		ContactPhone: "+91-11-2345-6789",
		Address:      "Varunalaya Phase-II, Karol Bagh, New Delhi - 110005",
		Website:      "https://www.delhijalboard.nic.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Delhi",
		IssueType:    domain.IssueTypeElectricity,
		Name:         "Delhi Electricity Regulatory Commission",
		ContactEmail: "electricity@derc.gov.in",
		ContactPhone: "+91-11-2345-6788",
		Address:      "DERC Building, Vinay Marg, Chanakyapuri, New Delhi - 110021",
		Website:      "https://www.derc.gov.in",
		WorkingHours: "24/7 Emergency Services",
	},
	{
		City:         "Delhi",
		IssueType:    domain.IssueTypeRoad,
		Name:         "Public Works Department - Delhi",
		ContactEmail: "pwd@delhi.gov.in",
		ContactPhone: "+91-11-2345-6787",
		Address:      "PWD Building, IP Estate, New Delhi - 110002",
		Website:      "https://pwd.delhi.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Delhi",
		IssueType:    domain.IssueTypeSanitation,
		Name:         "Municipal Corporation of Delhi - Sanitation",
		ContactEmail: "sanitation@mcdonline.gov.in",
		ContactPhone: "+91-11-2345-6786",
		Address:      "MCD Building, Town Hall, Delhi - 110006",
		Website:      "https://mcdonline.gov.in",
		WorkingHours: "24/7 Services",
	},
	{
		City:         "Delhi",
		IssueType:    domain.IssueTypeStreetLights,
		Name:         "Street Lighting Department - Delhi",
		ContactEmail: "streetlights@delhi.gov.in",
		ContactPhone: "+91-11-2345-6785",
		Address:      "Electrical Division, Secretariat, Delhi - 110054",
		Website:      "https://delhi.gov.in",
		WorkingHours: "9:00 AM - 6:00 PM (Mon-Fri)",
	},
	{
		City:         "Delhi",
		IssueType:    domain.IssueTypeGarbageCollection,
		Name:         "East Delhi Municipal Corporation",
		ContactEmail: "waste@eastdelhi.gov.in",
		ContactPhone: "+91-11-2345-6784",
		Address:      "EDMC Building, Preet Vihar, Delhi - 110092",
		Website:      "https://eastdelhi.gov.in",
		WorkingHours: "6:00 AM - 10:00 PM (Daily)",
	},
	{
		City:         "Delhi",
		IssueType:    domain.IssueTypePublicTransport,
		Name:         "Delhi Transport Corporation",
		ContactEmail: "dtc@delhi.gov.in",
		ContactPhone: "+91-11-2345-6783",
		Address:      "DTC Building, IP Estate, New Delhi - 110002",
		Website:      "https://dtc.delhi.gov.in",
		WorkingHours: "24/7 Services",
	},
	{
		City:         "Delhi",
		IssueType:    domain.IssueTypeParks,
		Name:         "Horticulture Department - Delhi",
		ContactEmail: "parks@delhi.gov.in",
		ContactPhone: "+91-11-2345-6782",
		Address:      "Udyog Bhawan, New Delhi - 110011",
		Website:      "https://delhi.gov.in",
		WorkingHours: "6:00 AM - 6:00 PM (Daily)",
	},
	{
		City:         "Delhi",
		IssueType:    domain.IssueTypeNoisePollution,
		Name:         "Delhi Pollution Control Committee",
		ContactEmail: "dpcc@delhi.gov.in",
		ContactPhone: "+91-11-2345-6781",
		Address:      "ISBT Building, Kashmere Gate, Delhi - 110006",
		Website:      "https://dpcc.delhigovt.nic.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Delhi",
		IssueType:    domain.IssueTypeOther,
		Name:         "Delhi Secretariat - General",
		ContactEmail: "general@delhi.gov.in",
		ContactPhone: "+91-11-2345-6780",
		Address:      "Delhi Secretariat, IP Estate, New Delhi - 110002",
		Website:      "https://delhi.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Bangalore",
		IssueType:    domain.IssueTypeWater,
		Name:         "Bangalore Water Supply and Sewerage Board",
		ContactEmail: "complaints@bwssb.gov.in",
		ContactPhone: "+91-80-4567-8901",
		Address:      "BWSSB Building, Cauvery Bhavan, K.G. Road, Bangalore - 560009",
		Website:      "https://www.bwssb.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Bangalore",
		IssueType:    domain.IssueTypeElectricity,
		Name:         "Bangalore Electricity Supply Company",
		ContactEmail: "complaints@bescom.co.in",
		ContactPhone: "+91-80-4567-8902",
		Address:      "BESCOM Corporate Office, K.R. Circle, Bangalore - 560001",
		Website:      "https://bescom.co.in",
		WorkingHours: "24/7 Emergency Services",
	},
	{
		City:         "Bangalore",
		IssueType:    domain.IssueTypeRoad,
		Name:         "Bruhat Bengaluru Mahanagara Palike - Roads",
		ContactEmail: "roads@bbmp.gov.in",
		ContactPhone: "+91-80-4567-8903",
		Address:      "BBMP Head Office, N.R. Square, Bangalore - 560002",
		Website:      "https://bbmp.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Bangalore",
		IssueType:    domain.IssueTypeSanitation,
		Name:         "Solid Waste Management - BBMP",
		ContactEmail: "sanitation@bbmp.gov.in",
		ContactPhone: "+91-80-4567-8904",
		Address:      "SWM Office, BBMP, Bangalore - 560002",
		Website:      "https://bbmp.gov.in",
		WorkingHours: "24/7 Services",
	},
	{
		City:         "Bangalore",
		IssueType:    domain.IssueTypeStreetLights,
		Name:         "Street Lighting Department - BBMP",
		ContactEmail: "streetlights@bbmp.gov.in",
		ContactPhone: "+91-80-4567-8905",
		Address:      "Electrical Section, BBMP, Bangalore - 560002",
		Website:      "https://bbmp.gov.in",
		WorkingHours: "9:00 AM - 6:00 PM (Mon-Fri)",
	},
	{
		City:         "Bangalore",
		IssueType:    domain.IssueTypeGarbageCollection,
		Name:         "Waste Management - BBMP",
		ContactEmail: "waste@bbmp.gov.in",
		ContactPhone: "+91-80-4567-8906",
		Address:      "Waste Management Office, BBMP, Bangalore - 560002",
		Website:      "https://bbmp.gov.in",
		WorkingHours: "6:00 AM - 10:00 PM (Daily)",
	},
	{
		City:         "Bangalore",
		IssueType:    domain.IssueTypePublicTransport,
		Name:         "Bangalore Metropolitan Transport Corporation",
		ContactEmail: "complaints@bmtc.co.in",
		ContactPhone: "+91-80-4567-8907",
		Address:      "BMTC Building, Shantinagar, Bangalore - 560027",
		Website:      "https://www.mybmtc.com",
		WorkingHours: "24/7 Services",
	},
	{
		City:         "Bangalore",
		IssueType:    domain.IssueTypeParks,
		Name:         "Horticulture Department - BBMP",
		ContactEmail: "parks@bbmp.gov.in",
		ContactPhone: "+91-80-4567-8908",
		Address:      "Horticulture Wing, BBMP, Bangalore - 560002",
		Website:      "https://bbmp.gov.in",
		WorkingHours: "6:00 AM - 6:00 PM (Daily)",
	},
	{
		City:         "Bangalore",
		IssueType:    domain.IssueTypeNoisePollution,
		Name:         "Karnataka State Pollution Control Board",
		ContactEmail: "pollution@kspcb.gov.in",
		ContactPhone: "+91-80-4567-8909",
		Address:      "KSPCB Building, Paryavaran Bhavan, Bangalore - 560010",
		Website:      "https://kspcb.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Bangalore",
		IssueType:    domain.IssueTypeOther,
		Name:         "BBMP General Office",
		ContactEmail: "general@bbmp.gov.in",
		ContactPhone: "+91-80-4567-8910",
		Address:      "BBMP Commissioner Office, Bangalore - 560002",
		Website:      "https://bbmp.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Chennai",
		IssueType:    domain.IssueTypeWater,
		Name:         "Chennai Metropolitan Water Supply",
		ContactEmail: "complaints@chennaimetrowater.gov.in",
		ContactPhone: "+91-44-2345-6789",
		Address:      "Metro Water Building, Chintadripet, Chennai - 600002",
		Website:      "https://www.chennaimetrowater.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Chennai",
		IssueType:    domain.IssueTypeElectricity,
		Name:         "Tamil Nadu Electricity Board",
		ContactEmail: "complaints@tneb.gov.in",
		ContactPhone: "+91-44-2345-6788",
		Address:      "TNEB Building, Anna Salai, Chennai - 600002",
		Website:      "https://www.tnebnet.org",
		WorkingHours: "24/7 Emergency Services",
	},
	{
		City:         "Chennai",
		IssueType:    domain.IssueTypeRoad,
		Name:         "Greater Chennai Corporation - Roads",
		ContactEmail: "roads@chennai.gov.in",
		ContactPhone: "+91-44-2345-6787",
		Address:      "Corporation Building, Parry's Corner, Chennai - 600001",
		Website:      "https://www.chennaicorporation.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Chennai",
		IssueType:    domain.IssueTypeSanitation,
		Name:         "Chennai Corporation - Sanitation",
		ContactEmail: "sanitation@chennai.gov.in",
		ContactPhone: "+91-44-2345-6786",
		Address:      "Health Department, Corporation Building, Chennai - 600001",
		Website:      "https://www.chennaicorporation.gov.in",
		WorkingHours: "24/7 Services",
	},
	{
		City:         "Chennai",
		IssueType:    domain.IssueTypeStreetLights,
		Name:         "Street Lighting Department - Chennai",
		ContactEmail: "streetlights@chennai.gov.in",
		ContactPhone: "+91-44-2345-6785",
		Address:      "Electrical Section, Corporation Building, Chennai - 600001",
		Website:      "https://www.chennaicorporation.gov.in",
		WorkingHours: "9:00 AM - 6:00 PM (Mon-Fri)",
	},
	{
		City:         "Chennai",
		IssueType:    domain.IssueTypeGarbageCollection,
		Name:         "Waste Management - Chennai Corporation",
		ContactEmail: "waste@chennai.gov.in",
		ContactPhone: "+91-44-2345-6784",
		Address:      "SWM Department, Chennai Corporation, Chennai - 600001",
		Website:      "https://www.chennaicorporation.gov.in",
		WorkingHours: "6:00 AM - 10:00 PM (Daily)",
	},
	{
		City:         "Chennai",
		IssueType:    domain.IssueTypePublicTransport,
		Name:         "Metropolitan Transport Corporation",
		ContactEmail: "mtc@chennai.gov.in",
		ContactPhone: "+91-44-2345-6783",
		Address:      "MTC Building, Pallavan Salai, Chennai - 600002",
		Website:      "https://www.mtcbus.org",
		WorkingHours: "24/7 Services",
	},
	{
		City:         "Chennai",
		IssueType:    domain.IssueTypeParks,
		Name:         "Parks and Recreation - Chennai",
		ContactEmail: "parks@chennai.gov.in",
		ContactPhone: "+91-44-2345-6782",
		Address:      "Parks Department, Corporation Building, Chennai - 600001",
		Website:      "https://www.chennaicorporation.gov.in",
		WorkingHours: "6:00 AM - 6:00 PM (Daily)",
	},
	{
		City:         "Chennai",
		IssueType:    domain.IssueTypeNoisePollution,
		Name:         "Tamil Nadu Pollution Control Board",
		ContactEmail: "pollution@tnpcb.gov.in",
		ContactPhone: "+91-44-2345-6781",
		Address:      "TNPCB Building, Guindy, Chennai - 600032",
		Website:      "https://tnpcb.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Chennai",
		IssueType:    domain.IssueTypeOther,
		Name:         "Chennai Corporation - General",
		ContactEmail: "general@chennai.gov.in",
		ContactPhone: "+91-44-2345-6780",
		Address:      "Commissioner Office, Chennai Corporation, Chennai - 600001",
		Website:      "https://www.chennaicorporation.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Kolkata",
		IssueType:    domain.IssueTypeWater,
		Name:         "Kolkata Municipal Corporation - Water",
		ContactEmail: "water@kmcgov.in",
		ContactPhone: "+91-33-2234-5678",
		Address:      "KMC Building, 5 S.N. Banerjee Road, Kolkata - 700013",
		Website:      "https://www.kmcgov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Kolkata",
		IssueType:    domain.IssueTypeElectricity,
		Name:         "West Bengal State Electricity Board",
		ContactEmail: "complaints@wbseb.gov.in",
		ContactPhone: "+91-33-2234-5679",
		Address:      "Vidyut Bhavan, Salt Lake, Kolkata - 700091",
		Website:      "https://wbseb.gov.in",
		WorkingHours: "24/7 Emergency Services",
	},
	{
		City:         "Kolkata",
		IssueType:    domain.IssueTypeRoad,
		Name:         "Public Works Department - Kolkata",
		ContactEmail: "roads@kmcgov.in",
		ContactPhone: "+91-33-2234-5680",
		Address:      "PWD Building, Writers' Building, Kolkata - 700001",
		Website:      "https://www.kmcgov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Kolkata",
		IssueType:    domain.IssueTypeSanitation,
		Name:         "KMC Sanitation Department",
		ContactEmail: "sanitation@kmcgov.in",
		ContactPhone: "+91-33-2234-5681",
		Address:      "Health Department, KMC, Kolkata - 700013",
		Website:      "https://www.kmcgov.in",
		WorkingHours: "24/7 Services",
	},
	{
		City:         "Kolkata",
		IssueType:    domain.IssueTypeStreetLights,
		Name:         "Street Lighting - KMC",
		ContactEmail: "streetlights@kmcgov.in",
		ContactPhone: "+91-33-2234-5682",
		Address:      "Electrical Department, KMC, Kolkata - 700013",
		Website:      "https://www.kmcgov.in",
		WorkingHours: "9:00 AM - 6:00 PM (Mon-Fri)",
	},
	{
		City:         "Kolkata",
		IssueType:    domain.IssueTypeGarbageCollection,
		Name:         "Waste Management - KMC",
		ContactEmail: "waste@kmcgov.in",
		ContactPhone: "+91-33-2234-5683",
		Address:      "SWM Department, KMC, Kolkata - 700013",
		Website:      "https://www.kmcgov.in",
		WorkingHours: "6:00 AM - 10:00 PM (Daily)",
	},
	{
		City:         "Kolkata",
		IssueType:    domain.IssueTypePublicTransport,
		Name:         "Calcutta State Transport Corporation",
		ContactEmail: "transport@cstc.gov.in",
		ContactPhone: "+91-33-2234-5684",
		Address:      "CSTC Building, Esplanade, Kolkata - 700001",
		Website:      "https://cstc.gov.in",
		WorkingHours: "24/7 Services",
	},
	{
		City:         "Kolkata",
		IssueType:    domain.IssueTypeParks,
		Name:         "Parks and Gardens - KMC",
		ContactEmail: "parks@kmcgov.in",
		ContactPhone: "+91-33-2234-5685",
		Address:      "Parks Department, KMC, Kolkata - 700013",
		Website:      "https://www.kmcgov.in",
		WorkingHours: "6:00 AM - 6:00 PM (Daily)",
	},
	{
		City:         "Kolkata",
		IssueType:    domain.IssueTypeNoisePollution,
		Name:         "West Bengal Pollution Control Board",
		ContactEmail: "pollution@wbpcb.gov.in",
		ContactPhone: "+91-33-2234-5686",
		Address:      "WBPCB Building, Salt Lake, Kolkata - 700091",
		Website:      "https://wbpcb.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Kolkata",
		IssueType:    domain.IssueTypeOther,
		Name:         "KMC General Office",
		ContactEmail: "general@kmcgov.in",
		ContactPhone: "+91-33-2234-5687",
		Address:      "Mayor Office, KMC, Kolkata - 700013",
		Website:      "https://www.kmcgov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Bhubaneswar",
		IssueType:    domain.IssueTypeWater,
		Name:         "Bhubaneswar Municipal Corporation - Water",
		ContactEmail: "water@bmcbbsr.gov.in",
		ContactPhone: "+91-674-2345-678",
		Address:      "BMC Building, Unit-3, Bhubaneswar - 751001",
		Website:      "https://www.bmcbbsr.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Bhubaneswar",
		IssueType:    domain.IssueTypeElectricity,
		Name:         "Odisha State Electricity Board",
		ContactEmail: "complaints@oseb.gov.in",
		ContactPhone: "+91-674-2345-679",
		Address:      "Vidyut Bhavan, Janpath, Bhubaneswar - 751007",
		Website:      "https://oseb.gov.in",
		WorkingHours: "24/7 Emergency Services",
	},
	{
		City:         "Bhubaneswar",
		IssueType:    domain.IssueTypeRoad,
		Name:         "Bhubaneswar Development Authority",
		ContactEmail: "roads@bda.gov.in",
		ContactPhone: "+91-674-2345-680",
		Address:      "BDA Building, Chandrasekharpur, Bhubaneswar - 751023",
		Website:      "https://bda.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Bhubaneswar",
		IssueType:    domain.IssueTypeSanitation,
		Name:         "BMC Sanitation Department",
		ContactEmail: "sanitation@bmcbbsr.gov.in",
		ContactPhone: "+91-674-2345-681",
		Address:      "Health Wing, BMC, Bhubaneswar - 751001",
		Website:      "https://www.bmcbbsr.gov.in",
		WorkingHours: "24/7 Services",
	},
	{
		City:         "Bhubaneswar",
		IssueType:    domain.IssueTypeStreetLights,
		Name:         "Street Lighting - BMC",
		ContactEmail: "streetlights@bmcbbsr.gov.in",
		ContactPhone: "+91-674-2345-682",
		Address:      "Electrical Section, BMC, Bhubaneswar - 751001",
		Website:      "https://www.bmcbbsr.gov.in",
		WorkingHours: "9:00 AM - 6:00 PM (Mon-Fri)",
	},
	{
		City:         "Bhubaneswar",
		IssueType:    domain.IssueTypeGarbageCollection,
		Name:         "Waste Management - BMC",
		ContactEmail: "waste@bmcbbsr.gov.in",
		ContactPhone: "+91-674-2345-683",
		Address:      "SWM Wing, BMC, Bhubaneswar - 751001",
		Website:      "https://www.bmcbbsr.gov.in",
		WorkingHours: "6:00 AM - 10:00 PM (Daily)",
	},
	{
		City:         "Bhubaneswar",
		IssueType:    domain.IssueTypePublicTransport,
		Name:         "Capital Region Urban Transport",
		ContactEmail: "transport@crut.gov.in",
		ContactPhone: "+91-674-2345-684",
		Address:      "CRUT Building, Master Canteen Square, Bhubaneswar - 751001",
		Website:      "https://crut.gov.in",
		WorkingHours: "6:00 AM - 10:00 PM (Daily)",
	},
	{
		City:         "Bhubaneswar",
		IssueType:    domain.IssueTypeParks,
		Name:         "Parks and Gardens - BMC",
		ContactEmail: "parks@bmcbbsr.gov.in",
		ContactPhone: "+91-674-2345-685",
		Address:      "Horticulture Wing, BMC, Bhubaneswar - 751001",
		Website:      "https://www.bmcbbsr.gov.in",
		WorkingHours: "6:00 AM - 6:00 PM (Daily)",
	},
	{
		City:         "Bhubaneswar",
		IssueType:    domain.IssueTypeNoisePollution,
		Name:         "Odisha State Pollution Control Board",
		ContactEmail: "pollution@ospcb.gov.in",
		ContactPhone: "+91-674-2345-686",
		Address:      "OSPCB Building, Paribesh Bhavan, Bhubaneswar - 751012",
		Website:      "https://ospcb.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
	{
		City:         "Bhubaneswar",
		IssueType:    domain.IssueTypeOther,
		Name:         "BMC General Office",
		ContactEmail: "general@bmcbbsr.gov.in",
		ContactPhone: "+91-674-2345-687",
		Address:      "Commissioner Office, BMC, Bhubaneswar - 751001",
		Website:      "https://www.bmcbbsr.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	},
}
