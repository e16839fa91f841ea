// Package knowledge is the static stunting knowledge base. It is a single
// read-only table keyed by (topic, language) with keyword lists, matched
// against lower-cased user input. It is consulted only when the completion
// API is unavailable.
package knowledge

import "strings"

type Topic string

const (
	TopicDefinition       Topic = "definition"
	TopicCauses           Topic = "causes"
	TopicPrevention       Topic = "prevention"
	TopicTreatment        Topic = "treatment"
	TopicGrowthMonitoring Topic = "growth_monitoring"
	TopicNutrition        Topic = "nutrition_guidelines"
	TopicRiskFactors      Topic = "risk_factors"
	TopicWarningSigns     Topic = "early_warning_signs"
)

type Entry struct {
	Topic    Topic
	Language Language
	Title    string
	Keywords []string
	Content  string
}

// Lookup returns the content of the first entry in the requested language
// whose keyword list matches the text.
func Lookup(text string, lang Language) (string, bool) {
	lower := strings.ToLower(text)
	for _, entry := range entries {
		if entry.Language != lang {
			continue
		}
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry.Content, true
			}
		}
	}
	return "", false
}

// Guidance is the terminal fallback: a static string in the detected
// language explaining how to configure the completion API credential and
// listing the supported topics.
func Guidance(lang Language) string {
	if lang == LanguageIndonesian {
		return guidanceIndonesian
	}
	return guidanceEnglish
}

const guidanceEnglish = `Hello! I'm your Indonesia-focused Stunting Medical Assistant.

The AI completion service is currently unavailable. To enable dynamic answers:
1. Get an OpenAI API key from platform.openai.com
2. Add it to your .env file as OPENAI_API_KEY=your_key_here
3. Restart the application

Available Indonesia stunting topics:
- STUNTING: prevalence, characteristics, and current situation in Indonesia
- PREVENTION: government programs, community strategies, and family practices
- SOLUTIONS: healthcare services, interventions, and treatment in Indonesia
- IMPACT: effects on children, families, and Indonesian development

Example questions:
- "What's the current stunting situation in Indonesia?"
- "What government programs prevent stunting?"
- "How to prevent stunting in rural areas?"`

const guidanceIndonesian = `Halo! Saya adalah Asisten Medis Stunting Indonesia.

Layanan AI sedang tidak tersedia. Untuk mengaktifkan jawaban dinamis:
1. Dapatkan API key OpenAI dari platform.openai.com
2. Tambahkan ke file .env sebagai OPENAI_API_KEY=your_key_here
3. Restart aplikasi

Topik stunting di Indonesia yang tersedia:
- STUNTING: prevalensi, karakteristik, dan situasi di Indonesia
- PENCEGAHAN: program pemerintah, strategi komunitas, dan praktik keluarga
- SOLUSI: layanan kesehatan, intervensi, dan penanganan di Indonesia
- DAMPAK: efek pada anak, keluarga, dan pembangunan Indonesia

Contoh pertanyaan:
- "Bagaimana situasi stunting di Indonesia saat ini?"
- "Apa program pemerintah untuk mencegah stunting?"
- "Bagaimana cara mencegah stunting di desa?"`

var entries = []Entry{
	{
		Topic:    TopicDefinition,
		Language: LanguageEnglish,
		Title:    "What is Stunting?",
		Keywords: []string{"definition", "what is", "explain", "stunting", "malnutrition"},
		Content: `Stunting is a condition where a child's height is significantly below the average for their age. It is a form of malnutrition that affects physical and cognitive development.

Key points:
- Height-for-age below -2 standard deviations from WHO growth standards
- Usually occurs in the first 1000 days of life (conception to age 2)
- Often irreversible after age 2-3
- Can have long-term effects on health, education, and economic productivity

Globally it affects about 1 in 4 children under 5, and it remains one of Indonesia's main child-health challenges.`,
	},
	{
		Topic:    TopicCauses,
		Language: LanguageEnglish,
		Title:    "Causes of Stunting",
		Keywords: []string{"cause", "why", "reason", "factor", "lead to", "result in"},
		Content: `Stunting results from a complex interaction of factors:

1. Nutritional: inadequate protein and micronutrient intake, poor breastfeeding practices, insufficient complementary feeding after 6 months.
2. Environmental: poor sanitation and hygiene, limited access to clean water, frequent infections, food insecurity.
3. Maternal: poor nutrition before and during pregnancy, teenage pregnancy, birth intervals under 18 months, maternal infections.
4. Healthcare: limited prenatal and postnatal care, incomplete immunization, missed growth monitoring.`,
	},
	{
		Topic:    TopicPrevention,
		Language: LanguageEnglish,
		Title:    "Preventing Stunting",
		Keywords: []string{"prevent", "avoid", "stop", "how to", "protection", "intervention"},
		Content: `Preventing stunting requires a comprehensive approach across the first 1000 days:

During pregnancy: adequate maternal nutrition, at least 4 prenatal visits, daily iron and folic acid supplementation, disease prevention.
0-6 months: exclusive breastfeeding, early initiation within the first hour, frequent on-demand feeding.
6-24 months: timely introduction of complementary foods, adequate meal frequency, varied diet with protein, continued breastfeeding to 2 years.
Community level: clean water and sanitation, health education programs, food fortification, social protection.`,
	},
	{
		Topic:    TopicTreatment,
		Language: LanguageEnglish,
		Title:    "Treatment and Management of Stunting",
		Keywords: []string{"treat", "cure", "fix", "help", "management", "therapy", "solution"},
		Content: `While stunting is often irreversible after age 2-3, early intervention improves outcomes:

1. Nutritional rehabilitation: high-protein, high-calorie diet (120-150% of normal needs), micronutrient supplementation, therapeutic feeding programs, frequent small meals.
2. Medical care: treatment of underlying infections, management of anemia and vitamin deficiencies, regular growth tracking, catch-up immunization.
3. Long-term support: continued nutritional support, developmental monitoring, family education and counseling.

Early intervention before age 2 is crucial; prevention remains more effective and cheaper than treatment.`,
	},
	{
		Topic:    TopicGrowthMonitoring,
		Language: LanguageEnglish,
		Title:    "Growth Monitoring and Assessment",
		Keywords: []string{"growth", "monitoring", "measurement", "assessment", "chart", "percentile"},
		Content: `Regular growth monitoring is essential for early detection and intervention:

Growth charts: WHO Growth Standards for children 0-5 years; height-for-age is the primary stunting indicator, weight-for-height indicates acute malnutrition, head circumference tracks brain development.
Measurement frequency: monthly from birth to 6 months, every 2 months at 6-12 months, every 3 months at 1-2 years, every 6 months at 2-5 years.
Red flags: growth curves crossing percentiles downward, height-for-age below -2 SD (moderate) or -3 SD (severe), no height gain for 3 or more months.
Assessment tools: mid-upper arm circumference (MUAC) for quick screening, BMI for older children, developmental milestones for motor, cognitive, and social skills.`,
	},
	{
		Topic:    TopicNutrition,
		Language: LanguageEnglish,
		Title:    "Nutrition Guidelines for Prevention",
		Keywords: []string{"nutrition", "diet", "feeding", "breastfeeding", "complementary", "nutrients"},
		Content: `Evidence-based nutrition recommendations for preventing stunting:

Pregnancy: an additional 300-500 kcal/day in the 2nd and 3rd trimesters, protein at 1.1 g/kg body weight, 30 mg/day iron, 400-800 mcg/day folate, 1000-1300 mg/day calcium.
0-6 months: exclusive breastfeeding with no other foods or liquids, 8-12 feeds per day on demand, adequate maternal intake for milk production.
6-24 months: start complementary feeding at exactly 6 months; cover grains, legumes, meat or fish, dairy, fruits and vegetables; progress texture from puree to finger foods; prioritize iron-rich foods and vitamin A sources.
Key nutrients: protein 1.6 g/kg/day at 6-12 months, iron 11 mg/day at 7-12 months, zinc 3 mg/day, vitamin A 400-500 mcg/day.`,
	},
	{
		Topic:    TopicRiskFactors,
		Language: LanguageEnglish,
		Title:    "Risk Factors for Stunting",
		Keywords: []string{"risk", "factor", "vulnerable", "high risk", "susceptible", "at risk"},
		Content: `Understanding risk factors helps identify children who need extra attention:

Individual: low birth weight (under 2.5 kg), prematurity, multiple births, congenital conditions, frequent diarrhea or respiratory infections.
Family: low socioeconomic status, large family size with short birth intervals, low maternal education, limited household support, stunting in siblings or parents.
Community: rural residence, poor water and sanitation infrastructure, long distances to healthcare, seasonal food shortages, natural disasters.
Environmental: climate change affecting food security, water scarcity, air pollution, vector-borne diseases such as malaria and dengue.`,
	},
	{
		Topic:    TopicWarningSigns,
		Language: LanguageEnglish,
		Title:    "Early Warning Signs of Stunting",
		Keywords: []string{"warning", "sign", "symptom", "early", "detection", "recognition"},
		Content: `Recognizing early warning signs enables timely intervention:

Physical: slow height gain, consistently below growth chart percentiles, delayed milestones (sitting, standing, walking), poor muscle tone, thin arms and legs.
Behavioral: decreased activity, poor appetite, frequent crying, sleep problems, social withdrawal.
Developmental delays: late motor skills, delayed speech, poor eye contact, difficulty learning new skills.
Seek help when there is no height gain for 3 or more consecutive months, a falling growth curve, multiple delays at once, or several risk factors combined with family concern.`,
	},
	{
		Topic:    TopicDefinition,
		Language: LanguageIndonesian,
		Title:    "Apa itu Stunting?",
		Keywords: []string{"apa itu", "definisi", "jelaskan", "stunting", "malnutrisi", "pendek", "kerdil"},
		Content: `Stunting adalah kondisi di mana tinggi badan anak secara signifikan di bawah rata-rata untuk usianya. Ini adalah bentuk malnutrisi yang mempengaruhi perkembangan fisik dan kognitif.

Karakteristik utama:
- Tinggi-untuk-usia di bawah -2 standar deviasi dari standar pertumbuhan WHO
- Biasanya terjadi dalam 1000 hari pertama kehidupan (konsepsi hingga usia 2 tahun)
- Sering tidak dapat diubah setelah usia 2-3 tahun
- Dapat memiliki efek jangka panjang pada kesehatan, pendidikan, dan produktivitas ekonomi

Secara global mempengaruhi sekitar 1 dari 4 anak di bawah 5 tahun, dan masih menjadi tantangan utama kesehatan anak di Indonesia.`,
	},
	{
		Topic:    TopicCauses,
		Language: LanguageIndonesian,
		Title:    "Penyebab Stunting",
		Keywords: []string{"penyebab", "mengapa", "alasan", "faktor", "menyebabkan", "mengakibatkan", "kenapa"},
		Content: `Stunting terjadi karena interaksi kompleks dari berbagai faktor:

1. Faktor nutrisi: asupan protein tidak memadai, kekurangan mikronutrien (zat besi, seng, vitamin A, yodium), praktik menyusui yang buruk, makanan pendamping tidak memadai setelah 6 bulan.
2. Faktor lingkungan: sanitasi dan kebersihan yang buruk, akses air bersih terbatas, infeksi yang sering, ketahanan pangan rendah.
3. Faktor maternal: nutrisi ibu yang buruk sebelum dan selama kehamilan, kehamilan remaja, interval kelahiran kurang dari 18 bulan, infeksi maternal.
4. Faktor perawatan kesehatan: akses terbatas ke perawatan prenatal dan postnatal, imunisasi tidak lengkap, pemantauan pertumbuhan yang terlewat.`,
	},
	{
		Topic:    TopicPrevention,
		Language: LanguageIndonesian,
		Title:    "Mencegah Stunting",
		Keywords: []string{"cegah", "hindari", "hentikan", "bagaimana", "perlindungan", "intervensi", "mencegah"},
		Content: `Mencegah stunting memerlukan pendekatan komprehensif sepanjang 1000 hari pertama:

Selama kehamilan: nutrisi ibu yang memadai, minimal 4 kunjungan prenatal, suplemen zat besi dan asam folat harian, pencegahan penyakit.
0-6 bulan: menyusui eksklusif, inisiasi dini dalam 1 jam setelah kelahiran, pemberian ASI sesuai permintaan.
6-24 bulan: pengenalan makanan pendamping tepat waktu, frekuensi makan yang memadai, variasi makanan dengan protein, menyusui berkelanjutan hingga 2 tahun.
Tingkat komunitas: akses air bersih dan sanitasi, program pendidikan kesehatan, fortifikasi makanan, perlindungan sosial.`,
	},
	{
		Topic:    TopicTreatment,
		Language: LanguageIndonesian,
		Title:    "Pengobatan dan Penanganan Stunting",
		Keywords: []string{"obati", "sembuhkan", "perbaiki", "bantu", "penanganan", "terapi", "pengobatan", "solusi"},
		Content: `Meskipun stunting sering tidak dapat diubah setelah usia 2-3 tahun, intervensi dini dapat memperbaiki hasil:

1. Rehabilitasi nutrisi: diet tinggi protein dan kalori (120-150% dari kebutuhan normal), suplemen mikronutrien, program pemberian makan terapeutik, makan kecil yang sering.
2. Perawatan medis: pengobatan infeksi yang mendasari, penanganan anemia dan defisiensi vitamin, pemantauan pertumbuhan rutin, imunisasi catch-up.
3. Dukungan jangka panjang: dukungan nutrisi berkelanjutan, pemantauan perkembangan, pendidikan dan konseling keluarga.

Intervensi dini sebelum usia 2 tahun sangat penting; pencegahan tetap lebih efektif dan hemat biaya daripada pengobatan.`,
	},
	{
		Topic:    TopicGrowthMonitoring,
		Language: LanguageIndonesian,
		Title:    "Pemantauan Pertumbuhan dan Penilaian",
		Keywords: []string{"pertumbuhan", "pemantauan", "pengukuran", "penilaian", "kartu", "persentil", "tinggi", "berat"},
		Content: `Pemantauan pertumbuhan rutin sangat penting untuk deteksi dini dan intervensi:

Kartu pertumbuhan: Standar Pertumbuhan WHO untuk anak 0-5 tahun; tinggi-untuk-usia adalah indikator utama stunting, berat-untuk-tinggi menunjukkan malnutrisi akut, lingkar kepala melacak perkembangan otak.
Frekuensi pengukuran: bulanan dari lahir hingga 6 bulan, setiap 2 bulan pada 6-12 bulan, setiap 3 bulan pada 1-2 tahun, setiap 6 bulan pada 2-5 tahun.
Tanda bahaya: kurva pertumbuhan melintasi persentil ke bawah, tinggi-untuk-usia di bawah -2 SD (sedang) atau -3 SD (berat), tidak ada kenaikan tinggi selama 3 bulan atau lebih.
Alat penilaian: lingkar lengan atas tengah (MUAC) untuk skrining cepat, BMI untuk anak yang lebih besar, tahapan perkembangan untuk keterampilan motorik, kognitif, dan sosial.`,
	},
	{
		Topic:    TopicNutrition,
		Language: LanguageIndonesian,
		Title:    "Panduan Nutrisi untuk Pencegahan",
		Keywords: []string{"nutrisi", "diet", "makanan", "menyusui", "pendamping", "gizi", "vitamin", "protein"},
		Content: `Rekomendasi nutrisi berbasis bukti untuk mencegah stunting:

Kehamilan: tambahan 300-500 kkal/hari pada trimester ke-2 dan ke-3, protein 1,1 g/kg berat badan, zat besi 30 mg/hari, asam folat 400-800 mcg/hari, kalsium 1000-1300 mg/hari.
0-6 bulan: menyusui eksklusif tanpa makanan atau cairan lain, 8-12 kali per hari sesuai permintaan, asupan ibu yang memadai untuk produksi ASI.
6-24 bulan: mulai makanan pendamping tepat pada 6 bulan; cakup biji-bijian, kacang-kacangan, daging atau ikan, susu, buah dan sayuran; naikkan tekstur dari puree hingga makanan jari; utamakan makanan kaya zat besi dan sumber vitamin A.
Nutrisi utama: protein 1,6 g/kg/hari pada 6-12 bulan, zat besi 11 mg/hari pada 7-12 bulan, seng 3 mg/hari, vitamin A 400-500 mcg/hari.`,
	},
	{
		Topic:    TopicRiskFactors,
		Language: LanguageIndonesian,
		Title:    "Faktor Risiko Stunting",
		Keywords: []string{"risiko", "faktor", "rentan", "berisiko tinggi", "berisiko"},
		Content: `Memahami faktor risiko membantu mengidentifikasi anak yang memerlukan perhatian ekstra:

Individual: berat lahir rendah (di bawah 2,5 kg), prematuritas, kelahiran ganda, kondisi bawaan, diare atau infeksi saluran pernapasan yang sering.
Keluarga: status sosial ekonomi rendah, keluarga besar dengan interval kelahiran pendek, pendidikan ibu rendah, dukungan rumah tangga terbatas, riwayat stunting pada saudara kandung atau orang tua.
Komunitas: tempat tinggal pedesaan, infrastruktur air dan sanitasi buruk, jarak jauh ke fasilitas kesehatan, kekurangan pangan musiman, bencana alam.
Lingkungan: perubahan iklim yang mempengaruhi ketahanan pangan, kelangkaan air, polusi udara, penyakit yang ditularkan vektor seperti malaria dan demam berdarah.`,
	},
	{
		Topic:    TopicWarningSigns,
		Language: LanguageIndonesian,
		Title:    "Tanda Peringatan Dini Stunting",
		Keywords: []string{"peringatan", "tanda", "gejala", "dini", "deteksi", "pengenalan", "awal"},
		Content: `Mengenali tanda peringatan dini memungkinkan intervensi tepat waktu:

Fisik: kenaikan tinggi lambat, konsisten di bawah persentil kartu pertumbuhan, tahapan perkembangan tertunda (duduk, berdiri, berjalan), tonus otot buruk, lengan dan kaki tampak tipis.
Perilaku: aktivitas menurun, nafsu makan buruk, sering menangis, masalah tidur, penarikan sosial.
Keterlambatan perkembangan: keterampilan motorik terlambat, perkembangan bicara tertunda, kontak mata buruk, kesulitan mempelajari keterampilan baru.
Cari bantuan bila tidak ada kenaikan tinggi selama 3 bulan berturut-turut atau lebih, kurva pertumbuhan menurun, banyak keterlambatan sekaligus, atau beberapa faktor risiko disertai kekhawatiran keluarga.`,
	},
}
