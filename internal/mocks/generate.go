package mocks

//go:generate mockery --name TrafficStore --srcpkg github.com/aevon-lab/traffic-dashboard/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
