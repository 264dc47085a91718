package core

// Built-in wiper size reference table keyed "Make_Model". Lookup is
// case-insensitive; see Resolve. Rear is empty when the vehicle has no rear
// wiper.
var wiperSizeTable = map[string]SizeEntry{
	// Toyota
	"Toyota_Camry":        {Driver: `26"`, Passenger: `18"`},
	"Toyota_Corolla":      {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Toyota_RAV4":         {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Toyota_Highlander":   {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Toyota_Tacoma":       {Driver: `22"`, Passenger: `21"`},
	"Toyota_4Runner":      {Driver: `26"`, Passenger: `20"`, Rear: `16"`},
	"Toyota_Tundra":       {Driver: `22"`, Passenger: `22"`},
	"Toyota_Sequoia":      {Driver: `26"`, Passenger: `20"`, Rear: `16"`},
	"Toyota_Sienna":       {Driver: `26"`, Passenger: `20"`, Rear: `14"`},
	"Toyota_Prius":        {Driver: `26"`, Passenger: `16"`},
	"Toyota_Avalon":       {Driver: `26"`, Passenger: `19"`},
	"Toyota_Land Cruiser": {Driver: `26"`, Passenger: `20"`, Rear: `16"`},
	"Toyota_Venza":        {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Toyota_C-HR":         {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Toyota_GR Corolla":   {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Toyota_Crown":        {Driver: `26"`, Passenger: `19"`},
	"Toyota_bZ4X":         {Driver: `26"`, Passenger: `16"`, Rear: `12"`},

	// Lexus
	"Lexus_GX470": {Driver: `22"`, Passenger: `21"`, Rear: `16"`},
	"Lexus_GX460": {Driver: `26"`, Passenger: `18"`, Rear: `14"`},
	"Lexus_RX350": {Driver: `26"`, Passenger: `18"`, Rear: `14"`},
	"Lexus_RX330": {Driver: `26"`, Passenger: `18"`, Rear: `14"`},
	"Lexus_ES350": {Driver: `26"`, Passenger: `19"`},
	"Lexus_ES300": {Driver: `26"`, Passenger: `18"`},
	"Lexus_IS250": {Driver: `26"`, Passenger: `16"`},
	"Lexus_IS350": {Driver: `26"`, Passenger: `16"`},
	"Lexus_NX":    {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Lexus_LX570": {Driver: `26"`, Passenger: `20"`, Rear: `16"`},
	"Lexus_LX470": {Driver: `26"`, Passenger: `20"`, Rear: `16"`},

	// Honda
	"Honda_Civic":         {Driver: `26"`, Passenger: `18"`},
	"Honda_Accord":        {Driver: `26"`, Passenger: `19"`},
	"Honda_CR-V":          {Driver: `26"`, Passenger: `17"`, Rear: `12"`},
	"Honda_Pilot":         {Driver: `26"`, Passenger: `21"`, Rear: `12"`},
	"Honda_Odyssey":       {Driver: `26"`, Passenger: `20"`},
	"Honda_HR-V":          {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Honda_Passport":      {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Honda_Ridgeline":     {Driver: `26"`, Passenger: `20"`},
	"Honda_Fit":           {Driver: `26"`, Passenger: `16"`},
	"Honda_CR-V Hybrid":   {Driver: `26"`, Passenger: `17"`, Rear: `12"`},
	"Honda_Accord Hybrid": {Driver: `26"`, Passenger: `19"`},
	"Honda_Civic Type R":  {Driver: `26"`, Passenger: `18"`},

	// Acura
	"Acura_Integra": {Driver: `26"`, Passenger: `18"`},
	"Acura_TL":      {Driver: `26"`, Passenger: `19"`},
	"Acura_TSX":     {Driver: `26"`, Passenger: `19"`},
	"Acura_MDX":     {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Acura_RDX":     {Driver: `26"`, Passenger: `17"`, Rear: `12"`},
	"Acura_ILX":     {Driver: `26"`, Passenger: `18"`},

	// Ford
	"Ford_F-150":           {Driver: `22"`, Passenger: `22"`},
	"Ford_F-250":           {Driver: `22"`, Passenger: `22"`},
	"Ford_F-350":           {Driver: `22"`, Passenger: `22"`},
	"Ford_F-450":           {Driver: `22"`, Passenger: `22"`},
	"Ford_Super Duty":      {Driver: `22"`, Passenger: `22"`},
	"Ford_Explorer":        {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Ford_Escape":          {Driver: `28"`, Passenger: `17"`, Rear: `12"`},
	"Ford_Mustang":         {Driver: `22"`, Passenger: `20"`},
	"Ford_Edge":            {Driver: `26"`, Passenger: `18"`, Rear: `12"`},
	"Ford_Bronco":          {Driver: `22"`, Passenger: `20"`, Rear: `12"`},
	"Ford_Bronco Sport":    {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Ford_Fusion":          {Driver: `26"`, Passenger: `19"`},
	"Ford_Expedition":      {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Ford_Ranger":          {Driver: `22"`, Passenger: `20"`},
	"Ford_Transit":         {Driver: `26"`, Passenger: `16"`},
	"Ford_Transit Connect": {Driver: `26"`, Passenger: `16"`},
	"Ford_Focus":           {Driver: `26"`, Passenger: `18"`},
	"Ford_F-150 Lightning": {Driver: `22"`, Passenger: `22"`},

	// Chevrolet
	"Chevrolet_Silverado":      {Driver: `22"`, Passenger: `22"`},
	"Chevrolet_Silverado 1500": {Driver: `22"`, Passenger: `22"`},
	"Chevrolet_Silverado 2500": {Driver: `22"`, Passenger: `22"`},
	"Chevrolet_Silverado 3500": {Driver: `22"`, Passenger: `22"`},
	"Chevrolet_Equinox":        {Driver: `24"`, Passenger: `17"`, Rear: `12"`},
	"Chevrolet_Malibu":         {Driver: `26"`, Passenger: `19"`},
	"Chevrolet_Tahoe":          {Driver: `22"`, Passenger: `22"`},
	"Chevrolet_Suburban":       {Driver: `22"`, Passenger: `22"`},
	"Chevrolet_Traverse":       {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Chevrolet_Colorado":       {Driver: `22"`, Passenger: `20"`},
	"Chevrolet_Impala":         {Driver: `26"`, Passenger: `19"`},
	"Chevrolet_Cruze":          {Driver: `26"`, Passenger: `18"`},
	"Chevrolet_Blazer":         {Driver: `26"`, Passenger: `18"`, Rear: `12"`},
	"Chevrolet_Camaro":         {Driver: `22"`, Passenger: `20"`},
	"Chevrolet_Express":        {Driver: `22"`, Passenger: `22"`},
	"Chevrolet_Trax":           {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Chevrolet_Spark":          {Driver: `26"`, Passenger: `14"`},

	// Nissan
	"Nissan_Altima":     {Driver: `28"`, Passenger: `17"`},
	"Nissan_Rogue":      {Driver: `26"`, Passenger: `14"`, Rear: `12"`},
	"Nissan_Murano":     {Driver: `26"`, Passenger: `18"`, Rear: `12"`},
	"Nissan_Pathfinder": {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Nissan_Frontier":   {Driver: `22"`, Passenger: `20"`},
	"Nissan_Titan":      {Driver: `22"`, Passenger: `22"`},
	"Nissan_Sentra":     {Driver: `26"`, Passenger: `16"`},
	"Nissan_Leaf":       {Driver: `26"`, Passenger: `18"`},
	"Nissan_Armada":     {Driver: `26"`, Passenger: `20"`, Rear: `12"`},

	// Jeep
	"Jeep_Wrangler":       {Driver: `18"`, Passenger: `18"`, Rear: `12"`},
	"Jeep_Grand Cherokee": {Driver: `26"`, Passenger: `22"`, Rear: `14"`},
	"Jeep_Cherokee":       {Driver: `26"`, Passenger: `18"`, Rear: `12"`},
	"Jeep_Compass":        {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Jeep_Renegade":       {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Jeep_Gladiator":      {Driver: `22"`, Passenger: `20"`},

	// Hyundai
	"Hyundai_Tucson":   {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Hyundai_Elantra":  {Driver: `26"`, Passenger: `14"`},
	"Hyundai_Santa Fe": {Driver: `26"`, Passenger: `18"`, Rear: `12"`},
	"Hyundai_Sonata":   {Driver: `26"`, Passenger: `19"`},
	"Hyundai_Kona":     {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Hyundai_Palisade": {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Hyundai_Accent":   {Driver: `26"`, Passenger: `14"`},

	// Kia
	"Kia_Sorento":   {Driver: `26"`, Passenger: `18"`, Rear: `12"`},
	"Kia_Sportage":  {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Kia_Optima":    {Driver: `26"`, Passenger: `19"`},
	"Kia_Forte":     {Driver: `26"`, Passenger: `16"`},
	"Kia_Soul":      {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Kia_Telluride": {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Kia_Seltos":    {Driver: `26"`, Passenger: `16"`, Rear: `12"`},

	// Subaru
	"Subaru_Outback":   {Driver: `26"`, Passenger: `17"`, Rear: `14"`},
	"Subaru_Forester":  {Driver: `26"`, Passenger: `17"`, Rear: `14"`},
	"Subaru_Crosstrek": {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Subaru_Impreza":   {Driver: `26"`, Passenger: `16"`},
	"Subaru_Legacy":    {Driver: `26"`, Passenger: `19"`},
	"Subaru_Ascent":    {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Subaru_WRX":       {Driver: `26"`, Passenger: `16"`},

	// Mazda
	"Mazda_CX-5":   {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Mazda_CX-50":  {Driver: `26"`, Passenger: `16"`, Rear: `12"`},
	"Mazda_CX-9":   {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Mazda_Mazda3": {Driver: `26"`, Passenger: `18"`},
	"Mazda_Mazda6": {Driver: `26"`, Passenger: `19"`},

	// GMC
	"GMC_Sierra":      {Driver: `22"`, Passenger: `22"`},
	"GMC_Sierra 1500": {Driver: `22"`, Passenger: `22"`},
	"GMC_Sierra 2500": {Driver: `22"`, Passenger: `22"`},
	"GMC_Sierra 3500": {Driver: `22"`, Passenger: `22"`},
	"GMC_Acadia":      {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"GMC_Terrain":     {Driver: `24"`, Passenger: `17"`, Rear: `12"`},
	"GMC_Yukon":       {Driver: `22"`, Passenger: `22"`},
	"GMC_Yukon XL":    {Driver: `22"`, Passenger: `22"`},
	"GMC_Canyon":      {Driver: `22"`, Passenger: `20"`},
	"GMC_Savana":      {Driver: `22"`, Passenger: `22"`},
	"GMC_Hummer EV":   {Driver: `26"`, Passenger: `20"`},

	// Dodge
	"Dodge_Ram 1500":   {Driver: `24"`, Passenger: `21"`},
	"Dodge_Durango":    {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Dodge_Charger":    {Driver: `22"`, Passenger: `22"`},
	"Dodge_Challenger": {Driver: `22"`, Passenger: `20"`},
	"Dodge_Journey":    {Driver: `26"`, Passenger: `18"`, Rear: `12"`},

	// RAM (listed separately from Dodge)
	"RAM_1500":           {Driver: `24"`, Passenger: `21"`},
	"RAM_2500":           {Driver: `24"`, Passenger: `22"`},
	"RAM_3500":           {Driver: `24"`, Passenger: `22"`},
	"RAM_ProMaster":      {Driver: `26"`, Passenger: `16"`},
	"RAM_ProMaster City": {Driver: `26"`, Passenger: `16"`},

	// Volkswagen
	"Volkswagen_Jetta":  {Driver: `25"`, Passenger: `19"`},
	"Volkswagen_Passat": {Driver: `26"`, Passenger: `19"`},
	"Volkswagen_Tiguan": {Driver: `26"`, Passenger: `18"`, Rear: `12"`},
	"Volkswagen_Atlas":  {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Volkswagen_Golf":   {Driver: `26"`, Passenger: `16"`},

	// BMW
	"BMW_3 Series": {Driver: `24"`, Passenger: `19"`},
	"BMW_5 Series": {Driver: `24"`, Passenger: `19"`},
	"BMW_X3":       {Driver: `26"`, Passenger: `18"`, Rear: `14"`},
	"BMW_X5":       {Driver: `26"`, Passenger: `20"`, Rear: `14"`},

	// Mercedes
	"Mercedes_C-Class": {Driver: `22"`, Passenger: `22"`},
	"Mercedes_E-Class": {Driver: `24"`, Passenger: `19"`},
	"Mercedes_GLC":     {Driver: `26"`, Passenger: `18"`, Rear: `14"`},
	"Mercedes_GLE":     {Driver: `26"`, Passenger: `20"`, Rear: `14"`},

	// Audi
	"Audi_A4": {Driver: `26"`, Passenger: `19"`},
	"Audi_A6": {Driver: `26"`, Passenger: `19"`},
	"Audi_Q5": {Driver: `26"`, Passenger: `18"`, Rear: `14"`},
	"Audi_Q7": {Driver: `26"`, Passenger: `20"`, Rear: `14"`},

	// Tesla
	"Tesla_Model 3": {Driver: `26"`, Passenger: `19"`},
	"Tesla_Model Y": {Driver: `26"`, Passenger: `19"`},
	"Tesla_Model S": {Driver: `26"`, Passenger: `19"`},
	"Tesla_Model X": {Driver: `26"`, Passenger: `20"`},

	// Other
	"Infiniti_Q50":           {Driver: `26"`, Passenger: `18"`},
	"Infiniti_QX60":          {Driver: `26"`, Passenger: `18"`, Rear: `12"`},
	"Lincoln_Navigator":      {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Lincoln_Aviator":        {Driver: `26"`, Passenger: `20"`, Rear: `12"`},
	"Volvo_XC90":             {Driver: `26"`, Passenger: `18"`, Rear: `14"`},
	"Volvo_XC60":             {Driver: `26"`, Passenger: `18"`, Rear: `14"`},
	"Land Rover_Discovery":   {Driver: `26"`, Passenger: `18"`, Rear: `14"`},
	"Land Rover_Range Rover": {Driver: `26"`, Passenger: `20"`, Rear: `14"`},
	"Mitsubishi_Outlander":   {Driver: `26"`, Passenger: `18"`, Rear: `12"`},
	"Genesis_GV80":           {Driver: `26"`, Passenger: `18"`, Rear: `12"`},
	"Porsche_Cayenne":        {Driver: `26"`, Passenger: `20"`, Rear: `14"`},
}

var vehicleMakes = []string{
	"Acura", "Audi", "BMW", "Buick", "Cadillac", "Chevrolet", "Chrysler", "Dodge", "Fiat", "Ford",
	"Genesis", "GMC", "Honda", "Hyundai", "Infiniti", "Jaguar", "Jeep", "Kia", "Land Rover", "Lexus",
	"Lincoln", "Mazda", "Mercedes", "Mini", "Mitsubishi", "Nissan", "Porsche", "RAM", "Subaru",
	"Tesla", "Toyota", "Volkswagen", "Volvo",
}
