package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"duit/internal/api"
	"duit/internal/cli"
	"duit/internal/model"
)

// Demo dataset: Indonesian everyday finances. Amounts are whole rupiah.

type seedCategory struct {
	name  string
	typ   model.TransactionType
	icon  string
	color string
}

var seedCategories = []seedCategory{
	{"Makan & Minum", model.TypeExpense, "🍽️", "orange"},
	{"Transport", model.TypeExpense, "🚌", "sky"},
	{"Belanja", model.TypeExpense, "🛒", "violet"},
	{"Hiburan", model.TypeExpense, "🎭", "pink"},
	{"Tagihan", model.TypeExpense, "💡", "amber"},
	{"Pendidikan", model.TypeExpense, "📚", "indigo"},
	{"Kesehatan", model.TypeExpense, "💊", "rose"},
	{"Perawatan", model.TypeExpense, "💅", "cyan"},
	{"Investasi", model.TypeExpense, "📈", "emerald"},
	{"Lain-lain", model.TypeExpense, "📦", "slate"},
	{"Gaji", model.TypeIncome, "💼", "emerald"},
	{"Bonus & Insentif", model.TypeIncome, "🎁", "amber"},
	{"Pendapatan Sampingan", model.TypeIncome, "💰", "teal"},
}

type seedAccount struct {
	name string
	typ  model.AccountType
	icon string
}

var seedAccounts = []seedAccount{
	{"BCA", model.AccountTypeBank, "🏦"},
	{"Mandiri", model.AccountTypeBank, "🏦"},
	{"GoPay", model.AccountTypeEwallet, "📱"},
	{"OVO", model.AccountTypeEwallet, "📱"},
	{"Dana", model.AccountTypeEwallet, "📱"},
}

var expenseNotes = map[string][]string{
	"Makan & Minum": {
		"Makan siang di warteg", "Kopi di Starbucks", "Makan malam bareng keluarga",
		"Sarapan bubur ayam", "Jajan di kantin kantor", "Boba Thai Tea kekinian",
		"Makan di restoran Padang", "Snack camilan sore", "Es kopi susu",
		"Pizza bareng teman-teman", "Mie ayam depan kos", "Bakso setelah pulang kerja",
	},
	"Transport": {
		"Ojol ke kantor", "Bensin motor mingguan", "Grab ke mall",
		"KRL Commuter Line", "Parkir mall seharian", "Bayar tol Jagorawi",
		"Ojol pulang kerja malam", "Transjakarta busway", "Bensin mobil", "Ojol ke dokter",
		"Tiket bus antar kota", "Bensin pulang kampung",
	},
	"Belanja": {
		"Belanja bulanan Indomaret", "Alfamart minuman dan snack", "Shopee order baju baru",
		"Belanja sayur di pasar", "Tokopedia elektronik", "Skincare terbaru",
		"Sepatu olahraga baru", "Peralatan dapur rumah tangga", "Fashion online Lazada",
		"Vitamin dan suplemen", "Beli headset bluetooth", "Order baju kerja",
	},
	"Hiburan": {
		"Langganan Spotify Premium", "Netflix bulanan", "Nonton bioskop CGV",
		"Disney+ Hotstar", "YouTube Premium", "Top-up diamond Mobile Legends",
		"Karaoke bareng teman", "Main futsal weekend", "Top-up game PUBG",
		"Tiket konser musik", "Bowling bareng keluarga", "Escape room game",
	},
	"Tagihan": {
		"Bayar tagihan listrik PLN", "Tagihan PDAM air bersih", "Internet IndiHome bulanan",
		"Cicilan BPJS Kesehatan", "Iuran listrik kos", "Bayar wifi bulanan",
		"Tagihan telepon pascabayar", "Pulsa Telkomsel", "Top-up e-toll",
		"Iuran kebersihan komplek", "Bayar gas elpiji", "Berlangganan domain hosting",
	},
	"Pendidikan": {
		"SPP semester ini", "Beli buku kuliah semester baru", "Kursus bahasa Inggris",
		"Langganan Ruangguru Premium", "Beli alat tulis dan buku catatan",
		"Biaya ujian sertifikasi", "Bimbel online persiapan CPNS",
		"Workshop desain grafis Canva", "Kelas coding online Dicoding", "Biaya wisuda kampus",
	},
	"Kesehatan": {
		"Beli obat flu di apotek", "Konsultasi dokter umum puskesmas",
		"Cek laboratorium klinik", "Beli vitamin C dan zinc", "Periksa gigi rutin",
		"Beli obat maag", "Biaya rawat jalan BPJS", "Beli masker KN95",
		"Konsultasi dokter gizi", "Beli suplemen omega-3 fish oil",
	},
	"Perawatan": {
		"Potong rambut di barbershop", "Facial treatment di salon", "Laundry baju mingguan",
		"Beli sabun mandi dan shampoo", "Servis motor rutin", "Cat rambut salon",
		"Manikur dan pedikur", "Cuci mobil manual", "Ganti oli motor",
		"Beli parfum terbaru", "Waxing di salon kecantikan",
	},
	"Investasi": {
		"Top-up reksa dana pasar uang", "Beli saham BBCA lot kecil",
		"Beli emas Antam 1 gram", "Nabung deposito", "Beli SBN Ritel ORI",
		"Top-up Bibit reksa dana", "Transfer ke tabungan berjangka",
	},
	"Lain-lain": {
		"Transfer ke teman", "Sumbangan masjid lingkungan", "Hadiah ulang tahun teman",
		"Beli kado pernikahan", "Donasi panti asuhan", "Iuran arisan bulanan",
		"Sumbangan bencana alam", "Kado wisuda sahabat",
	},
}

var incomeNotes = []string{
	"Gaji bulanan", "Gaji + lembur bulan ini", "Transfer gaji dari perusahaan",
	"Bonus kinerja triwulan", "Transfer kiriman dari orang tua",
	"Penghasilan freelance desain", "Hasil penjualan barang online", "Dividen saham",
	"Cashback reward kartu kredit", "Pencairan reksa dana profit",
	"Uang lembur proyek khusus", "Penghasilan kreator konten YouTube",
	"Komisi penjualan referral", "THR lebaran", "Uang saku keluarga besar",
	"Honor ngajar les privat", "Bonus penyelesaian proyek", "Hasil jual barang bekas",
	"Pemasukan affiliate marketing", "Honorarium pembicara seminar",
	"Hadiah kuis berhadiah", "Pengembalian dana cashback",
}

// expenseRanges keeps amounts plausible per category.
var expenseRanges = map[string][2]int64{
	"Makan & Minum": {15_000, 120_000},
	"Transport":     {10_000, 150_000},
	"Belanja":       {30_000, 800_000},
	"Hiburan":       {15_000, 300_000},
	"Tagihan":       {50_000, 500_000},
	"Pendidikan":    {50_000, 1_500_000},
	"Kesehatan":     {20_000, 500_000},
	"Perawatan":     {20_000, 300_000},
	"Investasi":     {100_000, 2_000_000},
	"Lain-lain":     {10_000, 500_000},
}

// casual expenses lean toward e-wallets
var walletCategories = map[string]bool{
	"Makan & Minum": true,
	"Transport":     true,
	"Hiburan":       true,
}

func seedCmd() *cobra.Command {
	var (
		count     int
		seedValue int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the backend with demo data",
		Long: `Create 5 accounts, 13 categories and roughly the requested number of
transactions spread over the last 12 months. Meant for a fresh backend;
existing data is left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), newClient(), count, seedValue)
		},
	}

	cmd.Flags().IntVar(&count, "count", 250, "approximate number of transactions")
	cmd.Flags().Int64Var(&seedValue, "seed", 42, "random seed for reproducible data")

	return cmd
}

func runSeed(ctx context.Context, client *api.Client, count int, seedValue int64) error {
	rng := rand.New(rand.NewSource(seedValue))
	now := time.Now()

	accountIDs := make(map[string]int64, len(seedAccounts))
	for _, a := range seedAccounts {
		created, err := client.CreateAccount(ctx, api.AccountPayload{
			Type: a.typ,
			Name: a.name,
			Icon: a.icon,
		})
		if err != nil {
			return fmt.Errorf("seeding account %q: %w", a.name, err)
		}
		accountIDs[a.name] = created.ID
	}

	bankIDs := []int64{accountIDs["BCA"], accountIDs["Mandiri"]}
	walletIDs := []int64{accountIDs["GoPay"], accountIDs["OVO"], accountIDs["Dana"]}
	allIDs := append(append([]int64{}, bankIDs...), walletIDs...)

	categoryIDs := make(map[string]int64, len(seedCategories))
	var incomeCats []string
	for _, c := range seedCategories {
		created, err := client.CreateCategory(ctx, api.CategoryPayload{
			Name:  c.name,
			Type:  c.typ,
			Icon:  c.icon,
			Color: c.color,
		})
		if err != nil {
			return fmt.Errorf("seeding category %q: %w", c.name, err)
		}
		categoryIDs[c.name] = created.ID
		if c.typ == model.TypeIncome && c.name != "Gaji" {
			incomeCats = append(incomeCats, c.name)
		}
	}

	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription("Seeding transactions"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	created := 0
	add := func(p api.TransactionPayload) error {
		if _, err := client.CreateTransaction(ctx, p); err != nil {
			return fmt.Errorf("seeding transaction: %w", err)
		}
		created++
		_ = bar.Add(1)
		return nil
	}

	// Monthly salary for the past 12 months keeps the trend chart busy.
	salaryID := categoryIDs["Gaji"]
	for mo := 11; mo >= 0; mo-- {
		amount := 4_500_000 + rng.Int63n(7_500_001)
		note := []string{"Gaji bulanan", "Gaji + lembur bulan ini", "Transfer gaji dari perusahaan"}[rng.Intn(3)]
		accID := bankIDs[rng.Intn(len(bankIDs))]
		if err := add(api.TransactionPayload{
			Type:        model.TypeIncome,
			AmountCents: amount,
			Date:        salaryDate(now, mo),
			Note:        &note,
			CategoryID:  &salaryID,
			AccountID:   &accID,
		}); err != nil {
			return err
		}
	}

	// Extra irregular income.
	for i := 0; i < count/5; i++ {
		catID := categoryIDs[incomeCats[rng.Intn(len(incomeCats))]]
		note := incomeNotes[rng.Intn(len(incomeNotes))]
		accID := allIDs[rng.Intn(len(allIDs))]
		if err := add(api.TransactionPayload{
			Type:        model.TypeIncome,
			AmountCents: 50_000 + rng.Int63n(2_950_001),
			Date:        randomDate(rng, now),
			Note:        &note,
			CategoryID:  &catID,
			AccountID:   &accID,
		}); err != nil {
			return err
		}
	}

	// Everyday expenses fill the rest. Draw categories in declaration
	// order so the same --seed always produces the same data.
	expenseCats := make([]string, 0, len(expenseRanges))
	for _, c := range seedCategories {
		if c.typ == model.TypeExpense {
			expenseCats = append(expenseCats, c.name)
		}
	}
	for created < count {
		catName := expenseCats[rng.Intn(len(expenseCats))]
		lo, hi := expenseRanges[catName][0], expenseRanges[catName][1]
		// round to 500 rupiah for a realistic feel
		amount := (lo + rng.Int63n(hi-lo+1)) / 500 * 500
		if amount < 500 {
			amount = 500
		}

		pool := allIDs
		if walletCategories[catName] {
			pool = walletIDs
		}
		accID := pool[rng.Intn(len(pool))]
		catID := categoryIDs[catName]
		notes := expenseNotes[catName]
		note := notes[rng.Intn(len(notes))]

		if err := add(api.TransactionPayload{
			Type:        model.TypeExpense,
			AmountCents: amount,
			Date:        randomDate(rng, now),
			Note:        &note,
			CategoryID:  &catID,
			AccountID:   &accID,
		}); err != nil {
			return err
		}
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d accounts · %d categories · %d transactions",
		len(seedAccounts), len(seedCategories), created)))
	return nil
}

// randomDate picks a day in the last 12 months.
func randomDate(rng *rand.Rand, now time.Time) string {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -12*30)
	days := int(now.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rng.Intn(days+1)).Format("2006-01-02")
}

// salaryDate is payday, the 25th, of the month monthsAgo months back.
func salaryDate(now time.Time, monthsAgo int) string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -monthsAgo, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := 25
	if lastDay < day {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
