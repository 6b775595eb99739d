package season

// premierLeagueSeasons is ordered newest first.
var premierLeagueSeasons = []Season{
	{ID: 23614, Name: "2024/2025"},
	{ID: 21646, Name: "2023/2024"},
	{ID: 19734, Name: "2022/2023"},
	{ID: 18378, Name: "2021/2022"},
	{ID: 17420, Name: "2020/2021"},
	{ID: 16036, Name: "2019/2020"},
	{ID: 12962, Name: "2018/2019"},
	{ID: 6397, Name: "2017/2018"},
	{ID: 13, Name: "2016/2017"},
	{ID: 10, Name: "2015/2016"},
	{ID: 12, Name: "2014/2015"},
	{ID: 3, Name: "2013/2014"},
	{ID: 7, Name: "2012/2013"},
	{ID: 9, Name: "2011/2012"},
	{ID: 2, Name: "2010/2011"},
	{ID: 11, Name: "2009/2010"},
	{ID: 6, Name: "2008/2009"},
}

// Catalog is the fixed, ordered list of seasons the service knows about.
type Catalog struct {
	seasons []Season
	byID    map[int64]int
}

func NewCatalog(seasons []Season) *Catalog {
	c := &Catalog{
		seasons: append([]Season(nil), seasons...),
		byID:    make(map[int64]int, len(seasons)),
	}
	for i, s := range c.seasons {
		c.seasons[i].HasData = false
		c.byID[s.ID] = i
	}
	return c
}

func PremierLeague() *Catalog {
	return NewCatalog(premierLeagueSeasons)
}

// List returns a fresh copy so callers may set HasData without affecting
// later calls.
func (c *Catalog) List() []Season {
	return append([]Season(nil), c.seasons...)
}

func (c *Catalog) Find(id int64) (Season, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Season{}, false
	}
	return c.seasons[i], true
}
