package knowledge

import "cropsense/domain/agronomy"

// cropTable is the static knowledge base backing the registry. Ranges come
// from the model's training data distribution; they describe where each
// crop typically thrives, not hard agronomic limits.
var cropTable = []agronomy.CropRecord{
	{
		ID:          "rice",
		Name:        "Rice",
		Emoji:       "🌾",
		Description: "A staple cereal grown in flooded paddies, demanding high humidity and abundant water throughout the season.",
		Tips: []string{
			"Maintain 5-10 cm of standing water during the vegetative stage.",
			"Transplant seedlings 20-25 days after sowing for better tillering.",
			"Drain fields about two weeks before harvest.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 60, Max: 99},
			agronomy.Phosphorus:  {Min: 35, Max: 60},
			agronomy.Potassium:   {Min: 35, Max: 45},
			agronomy.Temperature: {Min: 20, Max: 35},
			agronomy.Humidity:    {Min: 80, Max: 85},
			agronomy.PH:          {Min: 5.0, Max: 7.5},
			agronomy.Rainfall:    {Min: 150, Max: 300},
		},
	},
	{
		ID:          "maize",
		Name:        "Maize",
		Emoji:       "🌽",
		Description: "A versatile cereal that prefers warm days, moderate rainfall and well-drained loamy soil.",
		Tips: []string{
			"Sow when soil temperature stays above 16 °C.",
			"Side-dress nitrogen at the knee-high stage.",
			"Avoid waterlogging; maize roots are sensitive to standing water.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 60, Max: 100},
			agronomy.Phosphorus:  {Min: 35, Max: 60},
			agronomy.Potassium:   {Min: 15, Max: 25},
			agronomy.Temperature: {Min: 18, Max: 27},
			agronomy.Humidity:    {Min: 55, Max: 75},
			agronomy.PH:          {Min: 5.5, Max: 7.0},
			agronomy.Rainfall:    {Min: 60, Max: 110},
		},
	},
	{
		ID:          "chickpea",
		Name:        "Chickpea",
		Emoji:       "🫘",
		Description: "A cool-season pulse that fixes its own nitrogen and tolerates dry conditions once established.",
		Tips: []string{
			"Avoid irrigation at flowering; excess moisture promotes fungal disease.",
			"Inoculate seed with rhizobium in first-time fields.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 20, Max: 60},
			agronomy.Phosphorus:  {Min: 55, Max: 80},
			agronomy.Potassium:   {Min: 75, Max: 85},
			agronomy.Temperature: {Min: 17, Max: 21},
			agronomy.Humidity:    {Min: 14, Max: 20},
			agronomy.PH:          {Min: 6.0, Max: 8.0},
			agronomy.Rainfall:    {Min: 65, Max: 95},
		},
	},
	{
		ID:          "kidneybeans",
		Name:        "Kidney Beans",
		Emoji:       "🫘",
		Description: "A warm-season legume grown for its large red seeds; sensitive to both frost and extreme heat.",
		Tips: []string{
			"Keep soil evenly moist during pod fill.",
			"Rotate away from other legumes to limit root rot.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 0, Max: 40},
			agronomy.Phosphorus:  {Min: 55, Max: 80},
			agronomy.Potassium:   {Min: 15, Max: 25},
			agronomy.Temperature: {Min: 15, Max: 25},
			agronomy.Humidity:    {Min: 18, Max: 25},
			agronomy.PH:          {Min: 5.5, Max: 6.5},
			agronomy.Rainfall:    {Min: 60, Max: 150},
		},
	},
	{
		ID:          "pigeonpeas",
		Name:        "Pigeon Peas",
		Emoji:       "🌿",
		Description: "A hardy perennial pulse that handles a wide temperature band and erratic rainfall.",
		Tips: []string{
			"Intercrop with short-season cereals in the first year.",
			"Prune after the first harvest to encourage regrowth.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 0, Max: 40},
			agronomy.Phosphorus:  {Min: 55, Max: 80},
			agronomy.Potassium:   {Min: 15, Max: 25},
			agronomy.Temperature: {Min: 18, Max: 37},
			agronomy.Humidity:    {Min: 30, Max: 70},
			agronomy.PH:          {Min: 4.5, Max: 7.4},
			agronomy.Rainfall:    {Min: 90, Max: 200},
		},
	},
	{
		ID:          "mothbeans",
		Name:        "Moth Beans",
		Emoji:       "🌱",
		Description: "A drought-tolerant legume suited to arid, sandy soils and hot summers.",
		Tips: []string{
			"Sow at the onset of monsoon; the crop matures in 75-90 days.",
			"No irrigation needed in most seasons once established.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 0, Max: 40},
			agronomy.Phosphorus:  {Min: 35, Max: 60},
			agronomy.Potassium:   {Min: 15, Max: 25},
			agronomy.Temperature: {Min: 24, Max: 32},
			agronomy.Humidity:    {Min: 40, Max: 65},
			agronomy.PH:          {Min: 3.5, Max: 9.9},
			agronomy.Rainfall:    {Min: 30, Max: 75},
		},
	},
	{
		ID:          "mungbean",
		Name:        "Mung Bean",
		Emoji:       "🌱",
		Description: "A short-duration pulse often squeezed between cereal crops; thrives in warm, humid weather.",
		Tips: []string{
			"Harvest pods in two or three pickings as they mature unevenly.",
			"A single pre-flowering irrigation usually suffices.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 0, Max: 40},
			agronomy.Phosphorus:  {Min: 35, Max: 60},
			agronomy.Potassium:   {Min: 15, Max: 25},
			agronomy.Temperature: {Min: 27, Max: 30},
			agronomy.Humidity:    {Min: 80, Max: 90},
			agronomy.PH:          {Min: 6.2, Max: 7.2},
			agronomy.Rainfall:    {Min: 36, Max: 60},
		},
	},
	{
		ID:          "blackgram",
		Name:        "Black Gram",
		Emoji:       "🌱",
		Description: "A protein-rich pulse for warm seasons, tolerant of short dry spells but not of frost.",
		Tips: []string{
			"Sow on raised beds in heavy soils to avoid waterlogging.",
			"Spray micronutrients at flowering for better pod set.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 20, Max: 60},
			agronomy.Phosphorus:  {Min: 55, Max: 80},
			agronomy.Potassium:   {Min: 15, Max: 25},
			agronomy.Temperature: {Min: 25, Max: 35},
			agronomy.Humidity:    {Min: 60, Max: 70},
			agronomy.PH:          {Min: 6.5, Max: 7.8},
			agronomy.Rainfall:    {Min: 60, Max: 75},
		},
	},
	{
		ID:          "lentil",
		Name:        "Lentil",
		Emoji:       "🫘",
		Description: "A cool-season pulse for light soils, valued for fitting into rice fallows with residual moisture.",
		Tips: []string{
			"Sow early in the post-monsoon window to use residual soil moisture.",
			"Weed within the first 45 days; lentil competes poorly when young.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 0, Max: 40},
			agronomy.Phosphorus:  {Min: 55, Max: 80},
			agronomy.Potassium:   {Min: 15, Max: 25},
			agronomy.Temperature: {Min: 18, Max: 30},
			agronomy.Humidity:    {Min: 60, Max: 70},
			agronomy.PH:          {Min: 5.9, Max: 7.8},
			agronomy.Rainfall:    {Min: 35, Max: 55},
		},
	},
	{
		ID:          "pomegranate",
		Name:        "Pomegranate",
		Emoji:       "🍎",
		Description: "A hardy fruit shrub that fruits best with warm days, mild nights and controlled irrigation.",
		Tips: []string{
			"Use drip irrigation; alternating wet and dry spells split the fruit.",
			"Thin fruit to one per cluster for marketable size.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 0, Max: 40},
			agronomy.Phosphorus:  {Min: 5, Max: 30},
			agronomy.Potassium:   {Min: 35, Max: 45},
			agronomy.Temperature: {Min: 18, Max: 25},
			agronomy.Humidity:    {Min: 85, Max: 95},
			agronomy.PH:          {Min: 5.6, Max: 7.2},
			agronomy.Rainfall:    {Min: 100, Max: 115},
		},
	},
	{
		ID:          "banana",
		Name:        "Banana",
		Emoji:       "🍌",
		Description: "A heavy-feeding tropical fruit that needs steady warmth, high potassium and reliable water.",
		Tips: []string{
			"Apply potassium in split doses; bananas remove large amounts per bunch.",
			"Remove suckers except one follower per mat.",
			"Prop bunched plants against wind damage.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 80, Max: 120},
			agronomy.Phosphorus:  {Min: 70, Max: 95},
			agronomy.Potassium:   {Min: 45, Max: 55},
			agronomy.Temperature: {Min: 25, Max: 30},
			agronomy.Humidity:    {Min: 75, Max: 85},
			agronomy.PH:          {Min: 5.5, Max: 6.5},
			agronomy.Rainfall:    {Min: 90, Max: 120},
		},
	},
	{
		ID:          "mango",
		Name:        "Mango",
		Emoji:       "🥭",
		Description: "A tropical orchard tree that flowers after a dry, warm spell and dislikes humid cold.",
		Tips: []string{
			"Withhold irrigation for 2-3 months before flowering.",
			"Harvest at physiological maturity and ripen off-tree.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 0, Max: 40},
			agronomy.Phosphorus:  {Min: 15, Max: 40},
			agronomy.Potassium:   {Min: 25, Max: 35},
			agronomy.Temperature: {Min: 27, Max: 36},
			agronomy.Humidity:    {Min: 45, Max: 55},
			agronomy.PH:          {Min: 4.5, Max: 7.0},
			agronomy.Rainfall:    {Min: 85, Max: 100},
		},
	},
	{
		ID:          "grapes",
		Name:        "Grapes",
		Emoji:       "🍇",
		Description: "A vine crop with an unusually wide temperature tolerance but strict nutrient demands.",
		Tips: []string{
			"Prune in two passes: foundation pruning and fruit pruning.",
			"Monitor petiole nutrient levels rather than soil alone.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 0, Max: 40},
			agronomy.Phosphorus:  {Min: 120, Max: 145},
			agronomy.Potassium:   {Min: 195, Max: 205},
			agronomy.Temperature: {Min: 8, Max: 42},
			agronomy.Humidity:    {Min: 80, Max: 84},
			agronomy.PH:          {Min: 5.5, Max: 6.5},
			agronomy.Rainfall:    {Min: 65, Max: 75},
		},
	},
	{
		ID:          "watermelon",
		Name:        "Watermelon",
		Emoji:       "🍉",
		Description: "A sprawling summer cucurbit that wants warm nights, steady moisture and sandy loam.",
		Tips: []string{
			"Reduce irrigation as fruit ripens to concentrate sugars.",
			"Mulch beds to keep developing fruit off wet soil.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 80, Max: 120},
			agronomy.Phosphorus:  {Min: 5, Max: 30},
			agronomy.Potassium:   {Min: 45, Max: 55},
			agronomy.Temperature: {Min: 24, Max: 27},
			agronomy.Humidity:    {Min: 80, Max: 90},
			agronomy.PH:          {Min: 6.0, Max: 7.0},
			agronomy.Rainfall:    {Min: 40, Max: 60},
		},
	},
	{
		ID:          "muskmelon",
		Name:        "Muskmelon",
		Emoji:       "🍈",
		Description: "A dessert melon for hot, dry seasons; high humidity at ripening ruins flavor.",
		Tips: []string{
			"Train vines off the ground in humid regions.",
			"Harvest at full slip, when the stem separates cleanly.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 80, Max: 120},
			agronomy.Phosphorus:  {Min: 5, Max: 30},
			agronomy.Potassium:   {Min: 45, Max: 55},
			agronomy.Temperature: {Min: 27, Max: 30},
			agronomy.Humidity:    {Min: 90, Max: 95},
			agronomy.PH:          {Min: 6.0, Max: 6.8},
			agronomy.Rainfall:    {Min: 20, Max: 30},
		},
	},
	{
		ID:          "apple",
		Name:        "Apple",
		Emoji:       "🍏",
		Description: "A temperate orchard fruit that needs winter chilling and rich, slightly acidic soil.",
		Tips: []string{
			"Ensure adequate chilling hours for the chosen variety.",
			"Thin fruitlets within 30 days of bloom for annual bearing.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 0, Max: 40},
			agronomy.Phosphorus:  {Min: 120, Max: 145},
			agronomy.Potassium:   {Min: 195, Max: 205},
			agronomy.Temperature: {Min: 21, Max: 24},
			agronomy.Humidity:    {Min: 90, Max: 95},
			agronomy.PH:          {Min: 5.5, Max: 6.5},
			agronomy.Rainfall:    {Min: 100, Max: 125},
		},
	},
	{
		ID:          "orange",
		Name:        "Orange",
		Emoji:       "🍊",
		Description: "A subtropical citrus tolerant of a broad temperature band but demanding on humidity.",
		Tips: []string{
			"Irrigate at fruit set; moisture stress then causes heavy drop.",
			"Correct zinc and iron deficiencies with foliar sprays.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 0, Max: 40},
			agronomy.Phosphorus:  {Min: 5, Max: 30},
			agronomy.Potassium:   {Min: 5, Max: 15},
			agronomy.Temperature: {Min: 10, Max: 35},
			agronomy.Humidity:    {Min: 90, Max: 95},
			agronomy.PH:          {Min: 6.0, Max: 8.0},
			agronomy.Rainfall:    {Min: 100, Max: 120},
		},
	},
	{
		ID:          "papaya",
		Name:        "Papaya",
		Emoji:       "🧡",
		Description: "A fast-growing tropical fruit that bears year-round given warmth and high humidity.",
		Tips: []string{
			"Plant on mounds; papaya collapses quickly in waterlogged soil.",
			"Replace orchards every 3-4 years as yield declines.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 31, Max: 70},
			agronomy.Phosphorus:  {Min: 46, Max: 70},
			agronomy.Potassium:   {Min: 45, Max: 55},
			agronomy.Temperature: {Min: 23, Max: 44},
			agronomy.Humidity:    {Min: 90, Max: 95},
			agronomy.PH:          {Min: 6.5, Max: 7.0},
			agronomy.Rainfall:    {Min: 40, Max: 250},
		},
	},
	{
		ID:          "coconut",
		Name:        "Coconut",
		Emoji:       "🥥",
		Description: "A coastal palm that produces continuously under humid heat and deep, well-drained soil.",
		Tips: []string{
			"Apply common salt or potassium chloride in inland plantations.",
			"Husk-bury in basins to conserve moisture through dry months.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 0, Max: 40},
			agronomy.Phosphorus:  {Min: 5, Max: 30},
			agronomy.Potassium:   {Min: 25, Max: 35},
			agronomy.Temperature: {Min: 25, Max: 30},
			agronomy.Humidity:    {Min: 90, Max: 100},
			agronomy.PH:          {Min: 5.5, Max: 6.5},
			agronomy.Rainfall:    {Min: 130, Max: 225},
		},
	},
	{
		ID:          "cotton",
		Name:        "Cotton",
		Emoji:       "🌼",
		Description: "A fiber crop for long, warm seasons; heavy nitrogen feeder with moderate water needs.",
		Tips: []string{
			"Stop irrigation at boll opening to ease picking.",
			"Scout weekly for bollworm once squares appear.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 100, Max: 140},
			agronomy.Phosphorus:  {Min: 35, Max: 60},
			agronomy.Potassium:   {Min: 15, Max: 25},
			agronomy.Temperature: {Min: 22, Max: 26},
			agronomy.Humidity:    {Min: 75, Max: 85},
			agronomy.PH:          {Min: 5.8, Max: 8.0},
			agronomy.Rainfall:    {Min: 60, Max: 100},
		},
	},
	{
		ID:          "jute",
		Name:        "Jute",
		Emoji:       "🪢",
		Description: "A bast fiber crop of hot, humid deltas, retted in slow-moving water after harvest.",
		Tips: []string{
			"Sow with pre-monsoon showers for tall, fine fiber.",
			"Harvest at early pod stage; older stems give coarse fiber.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 60, Max: 100},
			agronomy.Phosphorus:  {Min: 35, Max: 60},
			agronomy.Potassium:   {Min: 35, Max: 45},
			agronomy.Temperature: {Min: 23, Max: 27},
			agronomy.Humidity:    {Min: 70, Max: 90},
			agronomy.PH:          {Min: 6.0, Max: 7.5},
			agronomy.Rainfall:    {Min: 150, Max: 200},
		},
	},
	{
		ID:          "coffee",
		Name:        "Coffee",
		Emoji:       "☕",
		Description: "A shade-loving plantation crop of mild tropical highlands with a distinct dry spell for flowering.",
		Tips: []string{
			"Maintain 50-60% shade in young plantations.",
			"Pick only ripe red cherries; mixed picking lowers grade.",
		},
		Ideal: agronomy.IdealConditions{
			agronomy.Nitrogen:    {Min: 80, Max: 120},
			agronomy.Phosphorus:  {Min: 15, Max: 40},
			agronomy.Potassium:   {Min: 25, Max: 35},
			agronomy.Temperature: {Min: 23, Max: 28},
			agronomy.Humidity:    {Min: 50, Max: 70},
			agronomy.PH:          {Min: 6.0, Max: 7.5},
			agronomy.Rainfall:    {Min: 110, Max: 200},
		},
	},
}
