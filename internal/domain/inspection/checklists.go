package inspection

import "github.com/google/uuid"

var craneChecklist = []string{
	"Check inspection tag",
	"Locate main crane disconnect switch",
	"Check condition of pendant/pendants",
	"Check wire ropes and chains for wear/defects",
	"Check hooks",
	"Check upper limit switch",
	"Check braking system",
	"Check trolley and bridge travel (stops in place and travel path is free from obstructions)",
	"Check hoist gearing system (any unusual noises)",
	"Check rails during operation",
	"Check lubrication",
	"Inspect all tackle to be used",
}

var guardingChecklist = []string{
	"Emergency stop buttons functional",
	"Safety guards in place",
	"Interlocks operating correctly",
	"Warning labels visible",
	"No damage to guards or fixings",
}

var forkliftChecklist = []string{
	// Daily checks
	"Fuel",
	"Oil",
	"Water",
	"Hydraulic Oil",
	"Motive Battery Condition",
	"Engine - Serviceable",
	"Tyre Condition / Pressure",
	"Steering Gear",
	"Gauges and Instruments",
	"Parking Brake",
	"Service Brake",
	"Steering",
	"Lights",
	"Mirrors",
	"Horn / Audible warning device",
	// Weekly checks
	"Hydraulics System",
	"FOP / ROP structure",
	"Load backrest extension",
	"Chain Lube / Mast Condition",
	"Bolts and nuts - retighten",
	"Greasing points",
	"Overall condition (Is it safe to use?)",
}

var vehicleChecklist = []string{
	// External
	"Bodywork",
	"Windscreen/Wipers",
	"Front Lights",
	"Rear Lights",
	"Tyre Wear & Pressures",
	"Spare Wheel & Jack",
	// Internal
	"Seat Belts",
	"Door Mirrors",
	"Rear View Mirror",
	"Seat Adjustment",
	"First Aid Kit (if fitted)",
	"Extinguisher (if fitted)",
	// Fluids
	"Oil Level",
	"Coolant Level",
	"Washer Fluid Level",
	"Power Steering Fluid",
	"Brake Fluid",
	"Clutch Fluid",
	// Function checks
	"All Lights",
	"Horn",
	"Wipers & Washers",
	"Steering",
	"Brakes",
	"Fuel Level",
}

var siteChecklist = []string{
	"Access & Egress (general site)",
	"Access & Egress (place of work)",
	"Tools and Equipment",
	"Personal Protective Equipment",
	"Housekeeping",
	"Dust Control",
	"Hazardous Substances",
	"Adjacent Work Activities",
	"Manual Handling Aids",
	"Toolbox Talk Delivered",
	"PAT Testing Up to Date",
	"Other Hazards (1)",
	"Other Hazards (2)",
	"Other Hazards (3)",
}

var ppeChecklist = []string{
	"Hard Hat",
	"Ear Defenders",
	"Safety Glasses / Goggles",
	"Dust Mask",
	"High Vis Jacket/Vest",
	"Gloves - Rubber (COSHH)",
	"Gloves - Textile (Manual Handling)",
	"Gloves - Other",
	"Gauntlet - Rubber (COSHH)",
	"Safety Boots",
	"Body Harness (Work at Height)",
}

// DefaultItems builds the kind's pre-filled checklist with fresh ids.
func DefaultItems(kind Kind) []Item {
	if kind == KindPPE {
		out := make([]Item, len(ppeChecklist))
		for i, name := range ppeChecklist {
			out[i] = Item{ID: uuid.NewString(), Name: name, Rating: RatingGood}
		}
		return out
	}

	var names []string
	switch kind {
	case KindCrane:
		names = craneChecklist
	case KindGuarding:
		names = guardingChecklist
	case KindForklift:
		names = forkliftChecklist
	case KindVehicle:
		names = vehicleChecklist
	case KindSite:
		names = siteChecklist
	}
	out := make([]Item, len(names))
	for i, name := range names {
		out[i] = Item{ID: uuid.NewString(), Name: name, Status: StatusPass}
	}
	return out
}
