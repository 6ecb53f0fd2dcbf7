package mocks

//go:generate mockery --name ReadingStore --srcpkg github.com/Schnee111/smart-city-monitoring-system/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Publisher --srcpkg github.com/Schnee111/smart-city-monitoring-system/internal/broadcast --output ./broadcast --outpkg broadcastmocks --with-expecter
//go:generate mockery --name Registry --srcpkg github.com/Schnee111/smart-city-monitoring-system/internal/registry --output ./registry --outpkg registrymocks --with-expecter
