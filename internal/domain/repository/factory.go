package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Products() ProductRepository
	Orders() OrderRepository
	Deposits() DepositRepository
	Referrals() ReferralRepository
	Notifications() NotificationRepository
	Cards() CardRepository
	Activity() ActivityRepository
	Stats() StatsRepository
}
