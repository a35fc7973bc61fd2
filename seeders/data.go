package seeders

type teamSeed struct {
	Name    string
	Color   string
	Members []string
}

type equipmentSeed struct {
	Name         string
	SerialNumber string
	Department   string
	Category     string
	Location     string
	TeamName     string
	AssignedTo   string
}

var teamsData = []teamSeed{
	{Name: "Mechanics", Color: "#3b82f6", Members: []string{"John Doe", "Jane Smith", "Mike Johnson"}},
	{Name: "Electricians", Color: "#f59e0b", Members: []string{"Sarah Wilson", "Tom Brown", "Emma Davis"}},
	{Name: "IT Support", Color: "#8b5cf6", Members: []string{"Alex Chen", "Lisa Anderson", "David Kim"}},
	{Name: "Vehicle Maintenance", Color: "#10b981", Members: []string{"Robert Taylor", "Maria Garcia"}},
	{Name: "Facilities", Color: "#ef4444", Members: []string{"James White", "Patricia Lee"}},
}

var equipmentData = []equipmentSeed{
	// Производственное оборудование
	{Name: "CNC Machine 01", SerialNumber: "CNC-2023-001", Department: "Production", Category: "Machinery", Location: "Factory Floor A", TeamName: "Mechanics", AssignedTo: "Production Department"},
	{Name: "Lathe Machine 01", SerialNumber: "LAT-2022-045", Department: "Production", Category: "Machinery", Location: "Factory Floor A", TeamName: "Mechanics", AssignedTo: "Production Department"},
	{Name: "Milling Machine 01", SerialNumber: "MIL-2023-012", Department: "Production", Category: "Machinery", Location: "Factory Floor B", TeamName: "Mechanics", AssignedTo: "Production Department"},
	{Name: "Conveyor Belt System", SerialNumber: "CON-2021-078", Department: "Production", Category: "Machinery", Location: "Assembly Line 1", TeamName: "Mechanics", AssignedTo: "Production Department"},
	{Name: "Hydraulic Press 01", SerialNumber: "HYD-2022-033", Department: "Production", Category: "Machinery", Location: "Factory Floor C", TeamName: "Mechanics", AssignedTo: "Production Department"},
	{Name: "Welding Machine 01", SerialNumber: "WEL-2023-056", Department: "Production", Category: "Tools", Location: "Welding Station 1", TeamName: "Mechanics", AssignedTo: "Production Department"},
	{Name: "Air Compressor 01", SerialNumber: "AIR-2022-089", Department: "Production", Category: "Machinery", Location: "Utility Room", TeamName: "Mechanics", AssignedTo: "Production Department"},

	// Офисная техника
	{Name: "Laptop Dell XPS 15", SerialNumber: "LAP-2024-001", Department: "IT", Category: "Electronics", Location: "Office 3B", TeamName: "IT Support", AssignedTo: "John Anderson"},
	{Name: "Laptop HP EliteBook", SerialNumber: "LAP-2024-002", Department: "IT", Category: "Electronics", Location: "Office 2A", TeamName: "IT Support", AssignedTo: "Sarah Johnson"},
	{Name: "Desktop Computer 01", SerialNumber: "DESK-2023-015", Department: "IT", Category: "Electronics", Location: "Office 1C", TeamName: "IT Support", AssignedTo: "IT Department"},
	{Name: "HP LaserJet Printer", SerialNumber: "PRT-2023-042", Department: "IT", Category: "Electronics", Location: "Office Main Floor", TeamName: "IT Support", AssignedTo: "IT Department"},
	{Name: "Canon Scanner", SerialNumber: "SCN-2022-028", Department: "IT", Category: "Electronics", Location: "Office Main Floor", TeamName: "IT Support", AssignedTo: "IT Department"},
	{Name: "Network Router Main", SerialNumber: "RTR-2021-001", Department: "IT", Category: "Electronics", Location: "Server Room", TeamName: "IT Support", AssignedTo: "IT Department"},
	{Name: "Network Switch 24-Port", SerialNumber: "SWT-2022-005", Department: "IT", Category: "Electronics", Location: "Server Room", TeamName: "IT Support", AssignedTo: "IT Department"},
	{Name: "Server Dell PowerEdge", SerialNumber: "SRV-2020-001", Department: "IT", Category: "Electronics", Location: "Server Room", TeamName: "IT Support", AssignedTo: "IT Department"},

	// Транспорт
	{Name: "Company Car Toyota Camry", SerialNumber: "CAR-2022-001", Department: "Logistics", Category: "Vehicles", Location: "Parking Lot A", TeamName: "Vehicle Maintenance", AssignedTo: "Logistics Department"},
	{Name: "Delivery Van Ford Transit", SerialNumber: "VAN-2021-003", Department: "Logistics", Category: "Vehicles", Location: "Parking Lot B", TeamName: "Vehicle Maintenance", AssignedTo: "Logistics Department"},
	{Name: "Forklift Toyota 3-Ton", SerialNumber: "FLT-2020-012", Department: "Warehouse", Category: "Vehicles", Location: "Warehouse Floor", TeamName: "Vehicle Maintenance", AssignedTo: "Warehouse Department"},
	{Name: "Delivery Truck Isuzu", SerialNumber: "TRK-2021-007", Department: "Logistics", Category: "Vehicles", Location: "Parking Lot C", TeamName: "Vehicle Maintenance", AssignedTo: "Logistics Department"},
	{Name: "Company Bike Yamaha", SerialNumber: "BIK-2023-002", Department: "Logistics", Category: "Vehicles", Location: "Parking Lot A", TeamName: "Vehicle Maintenance", AssignedTo: "Logistics Department"},

	// Электрика
	{Name: "Air Conditioner Office 01", SerialNumber: "AC-2023-101", Department: "Facilities", Category: "Electrical", Location: "Office Floor 1", TeamName: "Electricians", AssignedTo: "Facilities Team"},
	{Name: "Air Conditioner Office 02", SerialNumber: "AC-2023-102", Department: "Facilities", Category: "Electrical", Location: "Office Floor 2", TeamName: "Electricians", AssignedTo: "Facilities Team"},
	{Name: "Generator Backup 50KVA", SerialNumber: "GEN-2022-001", Department: "Facilities", Category: "Electrical", Location: "Building B Basement", TeamName: "Electricians", AssignedTo: "Facilities Team"},
	{Name: "UPS System 10KVA", SerialNumber: "UPS-2023-005", Department: "IT", Category: "Electrical", Location: "Server Room", TeamName: "Electricians", AssignedTo: "IT Department"},
	{Name: "Inverter 5KVA", SerialNumber: "INV-2022-003", Department: "Facilities", Category: "Electrical", Location: "Building A", TeamName: "Electricians", AssignedTo: "Facilities Team"},
	{Name: "Main Power Panel", SerialNumber: "PWR-2020-001", Department: "Facilities", Category: "Electrical", Location: "Electrical Room", TeamName: "Electricians", AssignedTo: "Facilities Team"},

	// Здание и инфраструктура
	{Name: "Elevator Main Building", SerialNumber: "ELV-2021-001", Department: "Facilities", Category: "Machinery", Location: "Main Building", TeamName: "Facilities", AssignedTo: "Facilities Team"},
	{Name: "Fire Extinguisher Set A", SerialNumber: "FIRE-2024-001", Department: "Facilities", Category: "Tools", Location: "Building A - All Floors", TeamName: "Facilities", AssignedTo: "Facilities Team"},
	{Name: "CCTV Camera System", SerialNumber: "CCTV-2023-001", Department: "Security", Category: "Electronics", Location: "Building Perimeter", TeamName: "IT Support", AssignedTo: "Security Department"},
	{Name: "Access Control System", SerialNumber: "ACS-2023-001", Department: "Security", Category: "Electronics", Location: "Main Entrance", TeamName: "IT Support", AssignedTo: "Security Department"},
	{Name: "Water Pump Main", SerialNumber: "WTR-2022-001", Department: "Facilities", Category: "Machinery", Location: "Building Basement", TeamName: "Facilities", AssignedTo: "Facilities Team"},
}
