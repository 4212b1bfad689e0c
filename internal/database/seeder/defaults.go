package seeder

// Defaults is the development fixture set: a handful of postings so a
// fresh environment has something on the jobs page.
func Defaults() []Seeder {
	return []Seeder{
		JobPostingsSeeder{},
	}
}
