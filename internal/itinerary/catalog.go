package itinerary

import "time"

// Catalog order matters: selection always takes the first match.
var Catalog = []POI{
	{
		Name: "Jiaobanshan Park", Region: RegionFront,
		Months: []time.Month{time.January, time.February}, Evergreen: true,
		Lat: 24.8196, Lng: 121.3517, Note: "Plum blossoms above the Dahan river bend",
	},
	{
		Name: "Xiao Wulai Skywalk", Region: RegionFront,
		Months: []time.Month{time.October, time.November}, Evergreen: true,
		Lat: 24.8447, Lng: 121.3655, Note: "Glass walkway over the falls, maples in autumn",
	},
	{
		Name: "Dongyanshan Forest", Region: RegionFront,
		Months: []time.Month{time.April, time.May}, Evergreen: true,
		Lat: 24.8283, Lng: 121.4126, Note: "Tung blossom trails and cedar forest",
	},
	{
		Name: "Fuxing Tea Terraces", Region: RegionFront,
		Months: []time.Month{time.April, time.May},
		Lat: 24.8031, Lng: 121.3449, Note: "Spring harvest on the terraces",
	},
	{
		Name: "Luofu Bridge", Region: RegionFront,
		Months: []time.Month{time.March}, Evergreen: true,
		Lat: 24.7830, Lng: 121.3770, Note: "Red arch bridge lined with cherry trees",
	},
	{
		Name: "Lalashan Giant Trees", Region: RegionBack,
		Months: []time.Month{time.February, time.March}, Evergreen: true,
		Lat: 24.7064, Lng: 121.4306, Note: "Millennium cypress grove, cherries along the road",
	},
	{
		Name: "Upper Baling", Region: RegionBack,
		Months: []time.Month{time.February, time.March},
		Lat: 24.6780, Lng: 121.4080, Note: "Cherry orchards at the ridge village",
	},
	{
		Name: "Baling Bridge", Region: RegionBack,
		Months: []time.Month{time.October, time.November}, Evergreen: true,
		Lat: 24.6705, Lng: 121.3947, Note: "Old suspension bridge, red leaves in autumn",
	},
	{
		Name: "Sileng Hot Spring", Region: RegionBack,
		Months: []time.Month{time.December, time.January},
		Lat: 24.6372, Lng: 121.3880, Note: "Winter soak in the river valley",
	},
}

// ReturnTrip closes every three-day plan on the way back to the city.
var ReturnTrip = POI{
	Name: "Shimen Reservoir", Region: RegionFront, Evergreen: true,
	Lat: 24.8115, Lng: 121.2430, Note: "Lakeside stop on the drive home",
}

var (
	dayOnePriority = []string{"Jiaobanshan Park", "Xiao Wulai Skywalk"}
	dayTwoPriority = []string{"Lalashan Giant Trees", "Upper Baling"}
)

var Lodgings = []Lodging{
	{Name: "Jiaobanshan Guesthouse", Region: RegionFront, Groups: []string{"family", "elders"}},
	{Name: "Dahan River Lodge", Region: RegionFront, Groups: []string{"couple", "friends"}},
	{Name: "Xiao Wulai Campground", Region: RegionFront, Groups: []string{"friends", "family"}},
	{Name: "Lalashan Cabin", Region: RegionBack, Groups: []string{"couple", "family"}},
	{Name: "Upper Baling Homestay", Region: RegionBack, Groups: []string{"friends", "couple", "elders"}},
	{Name: "Sileng Spa Hotel", Region: RegionBack, Groups: []string{"elders", "couple"}},
}
